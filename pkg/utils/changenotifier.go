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

	"github.com/gammazero/workerpool"
)

// ChangeNotifier fans a value out to keyed observers. Notifications are
// delivered asynchronously on a single worker, so observers see them in the
// order NotifyChanged was called and a slow observer never blocks the caller.
type ChangeNotifier[T any] struct {
	lock      sync.Mutex
	observers map[string]func(T)
	pool      *workerpool.WorkerPool
	isStopped bool
}

func NewChangeNotifier[T any]() *ChangeNotifier[T] {
	return &ChangeNotifier[T]{
		observers: make(map[string]func(T)),
		pool:      workerpool.New(1),
	}
}

func (n *ChangeNotifier[T]) AddObserver(key string, onChanged func(T)) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.observers[key] = onChanged
}

func (n *ChangeNotifier[T]) RemoveObserver(key string) {
	n.lock.Lock()
	defer n.lock.Unlock()

	delete(n.observers, key)
}

func (n *ChangeNotifier[T]) HasObservers() bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	return len(n.observers) > 0
}

func (n *ChangeNotifier[T]) NotifyChanged(value T) {
	n.lock.Lock()
	if n.isStopped || len(n.observers) == 0 {
		n.lock.Unlock()
		return
	}
	observers := make([]func(T), 0, len(n.observers))
	for _, f := range n.observers {
		observers = append(observers, f)
	}
	// submit under the lock so that Stop cannot close the pool in between
	n.pool.Submit(func() {
		for _, f := range observers {
			f(value)
		}
	})
	n.lock.Unlock()
}

// Stop delivers pending notifications and drops any later ones.
func (n *ChangeNotifier[T]) Stop() {
	n.lock.Lock()
	if n.isStopped {
		n.lock.Unlock()
		return
	}
	n.isStopped = true
	n.lock.Unlock()

	n.pool.StopWait()
}
