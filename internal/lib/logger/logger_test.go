package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantJSON  bool
		wantDebug bool
	}{
		{name: "local", env: EnvLocal, wantJSON: false, wantDebug: true},
		{name: "dev", env: EnvDev, wantJSON: true, wantDebug: true},
		{name: "prod", env: EnvProd, wantJSON: true, wantDebug: false},
		{name: "unknown", env: "staging", wantJSON: true, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.env, &buf)

			log.Debug("debug line")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)

			buf.Reset()
			log.Info("product priced", "name", "Laptop")
			require.NotZero(t, buf.Len())

			var decoded map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &decoded) == nil
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Contains(t, buf.String(), "Laptop")
		})
	}
}
