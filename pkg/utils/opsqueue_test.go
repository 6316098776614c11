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

package utils_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/livekit/protocol/logger"

	"github.com/livekit/roomview/pkg/utils"
)

func TestOpsQueue(t *testing.T) {
	t.Run("runs ops in order", func(t *testing.T) {
		oq := utils.NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()

		var seen []int
		for i := 0; i < 1000; i++ {
			i := i
			require.True(t, oq.Enqueue(func() {
				seen = append(seen, i)
			}))
		}
		oq.Stop()

		select {
		case <-oq.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("queue did not drain")
		}
		require.Len(t, seen, 1000)
		for i, v := range seen {
			require.Equal(t, i, v)
		}
	})

	t.Run("concurrent producers are serialized", func(t *testing.T) {
		oq := utils.NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()

		counter := 0
		var wg sync.WaitGroup
		for p := 0; p < 10; p++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					oq.Enqueue(func() {
						// unsynchronized on purpose, only the queue goroutine touches it
						counter++
					})
				}
			}()
		}
		wg.Wait()
		oq.Stop()
		<-oq.Done()
		require.Equal(t, 1000, counter)
	})

	t.Run("rejects ops after stop", func(t *testing.T) {
		oq := utils.NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()
		oq.Stop()
		require.False(t, oq.Enqueue(func() {}))
		<-oq.Done()
	})

	t.Run("stop before start completes", func(t *testing.T) {
		oq := utils.NewOpsQueue(logger.GetLogger(), "test")
		oq.Stop()
		select {
		case <-oq.Done():
		default:
			t.Fatal("expected queue to be done")
		}
	})
}
