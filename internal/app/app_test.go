package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/utilkit/internal/config"
	mock_platform "github.com/oshokin/utilkit/platform/mocks"
)

// newTestConfig returns a validated configuration for the named platform profile.
func newTestConfig(t *testing.T, platformName string) *config.Config {
	t.Helper()

	cfg := &config.Config{
		LogLevel:          "info",
		Platform:          platformName,
		ChecksumAlgorithm: "md5",
		MaxOutputSize:     "1MiB",
		WineRootDrive:     "Z:",
		WineHomeDrive:     "Y:",
	}

	require.NoError(t, config.ValidateConfig(cfg))

	return cfg
}

// newMockEnvironment returns an environment reporting the given OS and user.
func newMockEnvironment(t *testing.T, goos, username string) *mock_platform.MockEnvironment {
	t.Helper()

	ctrl := gomock.NewController(t)

	env := mock_platform.NewMockEnvironment(ctrl)
	env.EXPECT().OS().Return(goos).AnyTimes()
	env.EXPECT().Username().Return(username).AnyTimes()
	env.EXPECT().HomeDir().Return("/home/"+username, nil).AnyTimes()

	return env
}
