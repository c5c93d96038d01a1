package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_UserAgent(t *testing.T) {
	assert.Equal(t, "portctl/dev", AppBuildInfo{}.UserAgent("portctl"))
	assert.Equal(t, "portctl/v1.2.0", NewAppBuildInfo("v1.2.0", "2026-01-01", "abc").UserAgent("portctl"))
}
