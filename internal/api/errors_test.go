package api

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"transport", &TransportError{Op: "list animals", URL: "u", Err: context.DeadlineExceeded}, KindTransport},
		{"wrapped transport", fmt.Errorf("outer: %w", &TransportError{StatusCode: 502}), KindTransport},
		{"decode", &DecodeError{Op: "get animal", Err: errors.New("bad")}, KindDecode},
		{"invalid reference", fmt.Errorf("id %q: %w", " ", ErrInvalidReference), KindInvalidReference},
		{"other", errors.New("something else"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestTransportError_Message(t *testing.T) {
	withStatus := &TransportError{Op: "get animal", URL: "http://x/api/animals/1", StatusCode: 404, Body: `{"error":"not found"}`}
	assert.Equal(t, `get animal: GET http://x/api/animals/1: unexpected status 404: {"error":"not found"}`, withStatus.Error())

	noBody := &TransportError{Op: "get animal", URL: "u", StatusCode: 503}
	assert.Equal(t, "get animal: GET u: unexpected status 503", noBody.Error())

	netErr := &TransportError{Op: "list animals", URL: "u", Err: errors.New("connection refused")}
	assert.Equal(t, "list animals: GET u: connection refused", netErr.Error())
	assert.True(t, errors.Is(netErr, netErr.Err))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "TransportError", KindTransport.String())
	assert.Equal(t, "DecodeError", KindDecode.String())
	assert.Equal(t, "InvalidReference", KindInvalidReference.String())
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "Unknown", ErrorKind(42).String())
}
