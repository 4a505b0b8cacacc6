package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDraft(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "valid",
			data: `{"id":"draft_1","allocation":{"Head":{"front":9,"rear":0}},"history":[{}],"history_index":0}`,
			want: "",
		},
		{name: "not json", data: `{"id":`, want: "corrupted JSON"},
		{name: "no id", data: `{"allocation":{}}`, want: "missing id"},
		{
			name: "unknown location",
			data: `{"id":"draft_1","allocation":{"Tail":{"front":3}}}`,
			want: `unknown location "Tail"`,
		},
		{
			name: "history index past end",
			data: `{"id":"draft_1","history":[{}],"history_index":3}`,
			want: "history index 3 out of range",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, checkDraft(tc.data))
		})
	}
}
