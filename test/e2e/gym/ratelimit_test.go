package gym_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
)

// TestRateLimitLinkRequests verifies sign-in link requests are limited to
// five a minute per client address.
func TestRateLimitLinkRequests(t *testing.T) {
	g := setupGymContainerWithDefaultRateLimits(t)
	ctx := t.Context()

	var lastErr error
	for i := range 6 {
		err := g.client.RequestLink(ctx, "someone@irontemple.test", gymsdk.PortalMember)
		if i < 5 {
			require.NoError(t, err, "request %d should not be limited", i+1)
			continue
		}
		lastErr = err
	}

	require.Error(t, lastErr)
	require.True(t, gymsdk.IsCode(lastErr, gymsdk.ErrorCodeRateLimited), "got %v", lastErr)
}
