/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package inference

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressSubscribeReceivesPublished(t *testing.T) {
	b := NewProgressBroadcaster()

	ch := b.Subscribe("inv-1")
	defer b.Unsubscribe(ch, "inv-1")

	b.Publish(ProgressEvent{
		InvocationID: "inv-1",
		Phase:        ProgressPhaseStart,
		Time:         time.Now(),
		DisplayText:  "Refining text",
	})

	select {
	case ev := <-ch:
		assert.Equal(t, ProgressPhaseStart, ev.Phase)
		assert.Equal(t, "Refining text", ev.DisplayText)
	case <-time.After(time.Second):
		t.Fatal("expected a progress event")
	}
}

func TestProgressLateSubscriberGetsLatestEvent(t *testing.T) {
	b := NewProgressBroadcaster()

	b.Publish(ProgressEvent{InvocationID: "inv-1", Phase: ProgressPhaseStart})
	b.Publish(ProgressEvent{InvocationID: "inv-1", Phase: ProgressPhaseEnd})

	ch := b.Subscribe("inv-1")
	defer b.Unsubscribe(ch, "inv-1")

	select {
	case ev := <-ch:
		assert.Equal(t, ProgressPhaseEnd, ev.Phase)
	case <-time.After(time.Second):
		t.Fatal("expected replay of the latest event")
	}
}

func TestProgressEventsRoutedByInvocation(t *testing.T) {
	b := NewProgressBroadcaster()

	ch := b.Subscribe("inv-1")
	defer b.Unsubscribe(ch, "inv-1")

	b.Publish(ProgressEvent{InvocationID: "inv-other", Phase: ProgressPhaseStart})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event for other invocation: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestProgressEmptyInvocationIgnored(t *testing.T) {
	b := NewProgressBroadcaster()

	assert.Nil(t, b.Subscribe(""))
	// Publishing without an invocation ID is a silent no-op.
	b.Publish(ProgressEvent{Phase: ProgressPhaseStart})
}

func TestProgressUnsubscribeClosesChannel(t *testing.T) {
	b := NewProgressBroadcaster()

	ch := b.Subscribe("inv-1")
	b.Unsubscribe(ch, "inv-1")

	_, open := <-ch
	assert.False(t, open)
}
