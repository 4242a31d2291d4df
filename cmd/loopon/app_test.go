package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/loopon-client/pkg/worker"
)

func TestApp_Run_PrintsUsage(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect func(t *testing.T, out string, err error)
	}{
		{
			name: "without_command",
			args: nil,
			expect: func(t *testing.T, out string, err error) {
				assert.ErrorIs(t, err, errUsage)
				assert.Contains(t, out, "password-reset")
			},
		},
		{
			name: "with_unknown_command",
			args: []string{"fly"},
			expect: func(t *testing.T, out string, err error) {
				assert.EqualError(t, err, `unknown command "fly"`)
				assert.Contains(t, out, "launch")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a := newApp(nil, worker.NewPoolStub(), &out)

			err := a.run(context.Background(), tt.args)
			tt.expect(t, out.String(), err)
		})
	}
}
