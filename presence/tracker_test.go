package presence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Tracker_Typing_Toggles(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	tracker.SetTyping("alice", true)
	req.True(tracker.IsTyping("alice"))
	req.False(tracker.IsTyping("bob"))

	tracker.SetTyping("alice", false)
	req.False(tracker.IsTyping("alice"))
}

func Test_Tracker_Indicator_Precedence(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	req.Equal(IndicatorNone, tracker.IndicatorFor("alice"))

	tracker.SetTyping("alice", true)
	req.Equal(IndicatorTyping, tracker.IndicatorFor("alice"))

	// Recording wins when both signals are active.
	tracker.SetRecording("alice", true)
	req.Equal(IndicatorRecording, tracker.IndicatorFor("alice"))

	tracker.SetRecording("alice", false)
	req.Equal(IndicatorTyping, tracker.IndicatorFor("alice"))
}

func Test_Tracker_ClearFor_Drops_Both_Signals(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.SetTyping("alice", true)
	tracker.SetRecording("alice", true)
	tracker.SetTyping("bob", true)

	tracker.ClearFor("alice")

	req.Equal(IndicatorNone, tracker.IndicatorFor("alice"))
	req.Equal(IndicatorTyping, tracker.IndicatorFor("bob"))
}

func Test_Tracker_Reset(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.SetTyping("alice", true)
	tracker.SetRecording("bob", true)

	tracker.Reset()

	req.Equal(IndicatorNone, tracker.IndicatorFor("alice"))
	req.Equal(IndicatorNone, tracker.IndicatorFor("bob"))
}
