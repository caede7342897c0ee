package gym_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
)

/*
 * Container setup and shared steps for the gym API end-to-end tests.
 * Sign-in links are minted with `gymd login-link` inside the container
 * since the image has no SMTP server to deliver them.
 */

const (
	testImageName = "gymdesk-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	ownerEmail     = "owner@irontemple.test"
	ownerName      = "Alex Owner"
	gymName        = "Iron Temple"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building gymd Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up gymd Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/gymd/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// gymContainer is a running gymd with its SDK client.
type gymContainer struct {
	container testcontainers.Container
	client    *gymsdk.Client
}

// setupGymContainer starts gymd with relaxed rate limits so tests can make
// many rapid requests.
func setupGymContainer(t *testing.T) *gymContainer {
	return startGymContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupGymContainerWithDefaultRateLimits keeps production limits, for the
// rate limit tests only.
func setupGymContainerWithDefaultRateLimits(t *testing.T) *gymContainer {
	return startGymContainer(t, nil)
}

func startGymContainer(t *testing.T, extraEnv map[string]string) *gymContainer {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"GYM_BOOTSTRAP_TOKEN": bootstrapToken,
		"GYM_BASE_URL":        "https://app.irontemple.test",
		"GYM_ISSUER":          "gymdesk-e2e",
		"GYM_ENV":             "test",
		"LOG_LEVEL":           "info",
		"LOG_FORMAT":          "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return &gymContainer{container: container, client: gymsdk.NewClient(baseURL)}
}

// mintToken runs `gymd login-link` in the container and returns the token
// from the printed link.
func (g *gymContainer) mintToken(t *testing.T, portal, email string) string {
	t.Helper()
	ctx := context.Background()

	code, out, err := g.container.Exec(ctx,
		[]string{"gymd", "login-link", "--portal", portal, "--email", email},
		tcexec.Multiplexed(),
	)
	require.NoError(t, err)

	output, err := io.ReadAll(out)
	require.NoError(t, err)
	require.Zero(t, code, "login-link failed: %s", output)

	// Startup logs share the stream; the link is the line that parses as a URL.
	var link string
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); strings.HasPrefix(line, "https://") {
			link = line
		}
	}
	require.NotEmpty(t, link, "no link in output: %s", output)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "/signin", u.Path)
	return u.Query().Get("token")
}

// signIn mints a link for email and exchanges it for a session.
func (g *gymContainer) signIn(t *testing.T, portal, email, otp string) *gymsdk.Session {
	t.Helper()

	s, err := g.client.Exchange(t.Context(), g.mintToken(t, strings.ToLower(portal), email), portal, otp)
	require.NoError(t, err, "exchange should succeed")
	require.NotEmpty(t, s.AccessToken())
	return s
}

// registerOwner registers the gym owner through the bootstrap endpoint and
// signs them in.
func (g *gymContainer) registerOwner(t *testing.T) *gymsdk.Session {
	t.Helper()

	admin, err := g.client.RegisterAdmin(t.Context(), bootstrapToken, gymsdk.CreateAdminRequest{
		Email:   ownerEmail,
		Name:    ownerName,
		GymName: gymName,
	})
	require.NoError(t, err, "owner registration should succeed")
	require.NotEmpty(t, admin.ID)

	return g.signIn(t, gymsdk.PortalAdmin, ownerEmail, "")
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *gymsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatus checks the HTTP status carried by an SDK error.
func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, status, gymsdk.StatusCode(err), "%s: %v", context, err)
}
