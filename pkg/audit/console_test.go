package audit

import (
	"bytes"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/chatrelay/relay/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleAudit(t *testing.T) {
	t.Parallel()

	logger := test.DummyLogger(io.Discard).Sugar()
	actual := NewConsoleAudit(logger)

	require.NotNil(t, actual)
	assert.IsType(t, &ConsoleAudit{}, actual)
}

func TestConsoleAuditWrite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       RelayData
		want        *regexp.Regexp
	}{
		{
			"relay data with all fields set",
			RelayData{
				Model:          "gemini-test",
				QueryLength:    5,
				ResponseLength: 9,
				Success:        true,
				Duration:       1500 * time.Millisecond,
				Timestamp:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
			},
			regexp.MustCompile(`AUDIT\s{"Model": "gemini-test", "QueryLength": 5, "ResponseLength": 9, "Success": true, "Duration": 1500, "Timestamp": 1672531200}`),
		},
		{
			"relay data for a failed provider call",
			RelayData{Model: "gemini-test", QueryLength: 5, Timestamp: time.Now().Unix()},
			regexp.MustCompile(`AUDIT\s{"Model": "gemini-test", "QueryLength": 5, "ResponseLength": 0, "Success": false, "Duration": 0, "Timestamp": \d{10}}`),
		},
		{
			"invalid relay data with nothing set",
			RelayData{},
			regexp.MustCompile(`AUDIT\s{"Model": "", "QueryLength": 0, "ResponseLength": 0, "Success": false, "Duration": 0, "Timestamp": 0}`),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var output bytes.Buffer

			logger := test.DummyLogger(&output).Sugar()

			audit := &ConsoleAudit{Logger: logger}
			err := audit.Write(&tc.given)

			require.NoError(t, err)
			assert.Regexp(t, tc.want, output.String())
		})
	}
}
