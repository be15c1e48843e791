package notify

import (
	"errors"
	"testing"

	"github.com/hoppxi/iconify/internal/icons"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeConverted(t *testing.T) {
	msg := Summarize(&icons.Report{
		Converted: []icons.Result{
			{Source: "arrow-right.svg", Component: "ArrowRight"},
			{Source: "house.svg", Component: "House"},
		},
	})

	assert.Equal(t, "Converted 2 icon(s)", msg.Summary)
	assert.Equal(t, "ArrowRight, House", msg.Body)
	assert.Equal(t, UrgencyLow, msg.Urgency)
}

func TestSummarizeFailures(t *testing.T) {
	msg := Summarize(&icons.Report{
		Converted: []icons.Result{{Component: "House"}},
		Failed: []error{
			&icons.FileError{File: "1st.svg", Op: "name", Err: errors.New("bad")},
		},
	})

	assert.Equal(t, "Converted 1 icon(s), 1 failed", msg.Summary)
	assert.Equal(t, "House\nname 1st.svg: bad", msg.Body)
	assert.Equal(t, UrgencyCritical, msg.Urgency)
}

func TestSummarizeOnlyFailures(t *testing.T) {
	msg := Summarize(&icons.Report{
		Failed: []error{errors.New("read a.svg: denied")},
	})

	assert.Equal(t, "read a.svg: denied", msg.Body)
}
