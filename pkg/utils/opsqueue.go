// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"sync"

	"github.com/frostbyte73/core"
	"github.com/gammazero/deque"

	"github.com/livekit/protocol/logger"
)

// OpsQueue runs enqueued operations one at a time, in order, on a single goroutine.
// The queue is unbounded so that no operation is ever dropped under load.
type OpsQueue struct {
	logger logger.Logger
	name   string

	lock      sync.Mutex
	ops       deque.Deque[func()]
	wake      chan struct{}
	isStarted bool
	isStopped bool
	done      core.Fuse
}

func NewOpsQueue(logger logger.Logger, name string) *OpsQueue {
	return &OpsQueue{
		logger: logger,
		name:   name,
		wake:   make(chan struct{}, 1),
	}
}

func (oq *OpsQueue) SetLogger(logger logger.Logger) {
	oq.lock.Lock()
	defer oq.lock.Unlock()

	oq.logger = logger
}

func (oq *OpsQueue) Start() {
	oq.lock.Lock()
	if oq.isStarted {
		oq.lock.Unlock()
		return
	}
	oq.isStarted = true
	oq.lock.Unlock()

	go oq.process()
}

// Stop stops accepting operations. Operations enqueued before Stop still run.
func (oq *OpsQueue) Stop() {
	oq.lock.Lock()
	if oq.isStopped {
		oq.lock.Unlock()
		return
	}
	oq.isStopped = true
	started := oq.isStarted
	oq.lock.Unlock()

	if !started {
		oq.done.Break()
		return
	}
	oq.signal()
}

// Done is closed once the queue has been stopped and drained.
func (oq *OpsQueue) Done() <-chan struct{} {
	return oq.done.Watch()
}

// Enqueue returns false if the queue has been stopped.
func (oq *OpsQueue) Enqueue(op func()) bool {
	oq.lock.Lock()
	if oq.isStopped {
		oq.lock.Unlock()
		oq.logger.Debugw("ops queue stopped, dropping op", "name", oq.name)
		return false
	}
	oq.ops.PushBack(op)
	oq.lock.Unlock()

	oq.signal()
	return true
}

func (oq *OpsQueue) Len() int {
	oq.lock.Lock()
	defer oq.lock.Unlock()

	return oq.ops.Len()
}

func (oq *OpsQueue) signal() {
	select {
	case oq.wake <- struct{}{}:
	default:
	}
}

func (oq *OpsQueue) process() {
	defer oq.done.Break()

	for {
		oq.lock.Lock()
		for oq.ops.Len() == 0 {
			if oq.isStopped {
				oq.lock.Unlock()
				return
			}
			oq.lock.Unlock()
			<-oq.wake
			oq.lock.Lock()
		}
		op := oq.ops.PopFront()
		oq.lock.Unlock()

		op()
	}
}
