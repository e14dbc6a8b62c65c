package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l)
	assert.NotNil(t, l.writer)
	assert.Equal(t, LevelInfo, l.min)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)
	l.Info("hello")
	assert.Equal(t, "LEVEL=INFO MESSAGE=hello\n", buf.String())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *Logger)
		want string
	}{
		{"debug", func(l *Logger) { l.Debug("d") }, "LEVEL=DEBUG"},
		{"info", func(l *Logger) { l.Info("i") }, "LEVEL=INFO"},
		{"warn", func(l *Logger) { l.Warn("w") }, "LEVEL=WARNING"},
		{"error", func(l *Logger) { l.Error("e") }, "LEVEL=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWithWriter(&buf, LevelDebug))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestMinimumLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)
	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	l.Error("kept too")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "MESSAGE=kept\n")
	assert.Contains(t, out, "MESSAGE=kept too\n")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	assert.True(t, l.min > LevelError)
}

func TestLogMultipleFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)
	l.Info("room added", Room("101"), F("TYPE", "Single"), Count(3))
	assert.Equal(t, "LEVEL=INFO MESSAGE=room added ROOM=101 TYPE=Single COUNT=3\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"Warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARNING", LevelWarn.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
	}{
		{"Action", Action("add_room"), "ACTION"},
		{"Status", Status("ok"), "STATUS"},
		{"Room", Room("101"), "ROOM"},
		{"Customer", Customer("Alice"), "CUSTOMER"},
		{"Count", Count(5), "COUNT"},
		{"Days", Days(2), "DAYS"},
		{"Total", Total(400), "TOTAL"},
		{"Path", Path("LHMS.txt"), "PATH"},
		{"Bytes", Bytes(12), "BYTES"},
		{"Choice", Choice("7"), "CHOICE"},
		{"Error", Error(errors.New("oops")), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key)
			assert.NotNil(t, tt.field.Value)
		})
	}
}

func TestF(t *testing.T) {
	f := F("mykey", 42)
	assert.Equal(t, "mykey", f.Key)
	assert.Equal(t, 42, f.Value)
}
