package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notify-you/notify-you/internal/config"
	"github.com/notify-you/notify-you/internal/mocks"
	"github.com/notify-you/notify-you/internal/pp"
)

const keyPrefix = "TEST-11D39F6A9A97AFAFD87CCEB-"

func set(t *testing.T, key string, set bool, val string) {
	t.Helper()

	if set {
		t.Setenv(key, val)
	} else {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func store(t *testing.T, key string, val string) { t.Helper(); set(t, key, true, val) }
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		set(t, k, false, "")
	}
}

func ptr[T any](x T) *T { return &x }

//nolint:paralleltest // environment vars are global
func TestGetenv(t *testing.T) {
	key := keyPrefix + "VAR"
	for name, tc := range map[string]struct {
		set      bool
		val      string
		expected string
	}{
		"nil":    {false, "", ""},
		"empty":  {true, "", ""},
		"simple": {true, "VAL", "VAL"},
		"space1": {true, "    VAL     ", "VAL"},
		"space2": {true, "     VAL    VAL2 ", "VAL    VAL2"},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			require.Equal(t, tc.expected, config.Getenv(key))
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestGetenvAsList(t *testing.T) {
	key := keyPrefix + "VAR"
	for name, tc := range map[string]struct {
		set      bool
		val      string
		expected []string
	}{
		"nil":         {false, "", []string{}},
		"empty":       {true, "", []string{}},
		"only-commas": {true, " , ,\t,", []string{}},
		"simple":      {true, "warning", []string{"warning"}},
		"space1":      {true, "  warning , skull  ", []string{"warning", "skull"}},
		"space2":      {true, "a b,,c", []string{"a b", "c"}},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			require.Equal(t, tc.expected, config.GetenvAsList(key, ","))
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadString(t *testing.T) {
	key := keyPrefix + "STRING"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      string
		newField      string
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"unset": {
			false, "", "hi", "hi", true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "hi")
			},
		},
		"unset/no-default": {false, "", "", "", true, nil},
		"empty1": {
			true, " ", "hello", "hello", true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "hello")
			},
		},
		"empty2": {
			true, " \t ", "aloha", "aloha", true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "aloha")
			},
		},
		"string": {true, "string ", "hey", "string", true, nil},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadString(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:funlen,paralleltest // environment vars are global
func TestReadBool(t *testing.T) {
	key := keyPrefix + "BOOL"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      bool
		newField      bool
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil1": {
			false, "", true, true, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%t", key, true)
			},
		},
		"nil2": {
			false, "", false, false, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%t", key, false)
			},
		},
		"empty": {
			true, " \t ", false, false, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%t", key, false)
			},
		},
		"true1":  {true, "true ", true, true, true, nil},
		"true2":  {true, " \t true", false, true, true, nil},
		"false1": {true, "false ", true, false, true, nil},
		"false2": {true, " false", false, false, true, nil},
		"illform1": {
			true, "weird\t  ", false, false, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, "weird", gomock.Any())
			},
		},
		"illform2": {
			true, " weird", true, true, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, "weird", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadBool(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadOptionalBool(t *testing.T) {
	key := keyPrefix + "OPTIONAL_BOOL"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		newField      *bool
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil":   {false, "", nil, true, nil},
		"empty": {true, "  ", nil, true, nil},
		"true":  {true, " 1", ptr(true), true, nil},
		"false": {true, "FALSE", ptr(false), true, nil},
		"illform": {
			true, "yes", nil, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, "yes", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			var field *bool
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadOptionalBool(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadOptionalInt(t *testing.T) {
	key := keyPrefix + "OPTIONAL_INT"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		newField      *int
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil":      {false, "", nil, true, nil},
		"empty":    {true, "", nil, true, nil},
		"zero":     {true, "0   ", ptr(0), true, nil},
		"negative": {true, "   -1", ptr(-1), true, nil},
		"large":    {true, "100", ptr(100), true, nil},
		"1.0": {
			true, "   1.0   ", nil, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, "1.0", gomock.Any())
			},
		},
		"words": {
			true, "   word   ", nil, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, "word", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			var field *int
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadOptionalInt(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:funlen,paralleltest // environment vars are global
func TestReadNonnegDuration(t *testing.T) {
	key := keyPrefix + "DURATION"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      time.Duration
		newField      time.Duration
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil": {
			false, "", time.Second, time.Second, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", key, time.Second)
			},
		},
		"empty": {
			true, "", time.Second, time.Second, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", key, time.Second)
			},
		},
		"0":   {true, "0", time.Second, 0, true, nil},
		"30s": {true, "  30s ", time.Second, 30 * time.Second, true, nil},
		"1h":  {true, "1h", time.Second, time.Hour, true, nil},
		"-1s": {
			true, " -1s ", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%v) is negative", key, -time.Second)
			},
		},
		"1x": {
			true, "1x", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, "1x", gomock.Any())
			},
		},
		"illform": {
			true, "  ready", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, "ready", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			ok := config.ReadNonnegDuration(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.newField, field)
		})
	}
}
