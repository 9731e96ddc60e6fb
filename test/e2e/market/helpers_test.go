package market_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for marketplace end-to-end tests.
 * This includes container setup, account creation, and assertions.
 */

const (
	testImageName = "kolmarket-api-test:latest"

	adminEmail    = "admin@kolmarket.test"
	adminPassword = "Admin123!"
	clientEmail   = "client@kolmarket.test"
	clientPass    = "Client123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Market API Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Market API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
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

// setupMarketContainer starts the marketplace service in a container and
// returns the base URL. No SendGrid key is configured, so invite links are
// logged instead of mailed and the raw token comes back in the API response.
func setupMarketContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"MARKET_DATABASE_FILE":   "/tmp/market.db",
			"MARKET_ISSUER":          "kol-market-test",
			"MARKET_INVITE_BASE_URL": "http://localhost:3000",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAdmin creates an admin account and returns its session.
func registerAdmin(t *testing.T, client *marketsdk.SDKClient) *marketsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), marketsdk.RegisterRequest{
		Email:    adminEmail,
		FullName: "Administrator",
		Password: adminPassword,
		Role:     "admin",
	})
	require.NoError(t, err, "Admin registration should succeed")
	require.Equal(t, "admin", session.User().Role)

	return session
}

// registerClient creates a regular client account and returns its session.
func registerClient(t *testing.T, client *marketsdk.SDKClient) *marketsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), marketsdk.RegisterRequest{
		Email:    clientEmail,
		FullName: "Client User",
		Password: clientPass,
	})
	require.NoError(t, err, "Client registration should succeed")
	require.Equal(t, "client", session.User().Role)

	return session
}

// assertAPIError checks that an error is an APIError with the given status
// and stable error code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *marketsdk.APIError
	require.ErrorAs(t, err, &apiErr, "Should return APIError, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertForbidden checks that an error carries a 403. The role middleware
// answers with a bare RFC 6750 style body, so only the status is stable.
func assertForbidden(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var apiErr *marketsdk.APIError
	require.ErrorAs(t, err, &apiErr, "Should return APIError, got: %v", err)
	require.Equal(t, 403, apiErr.StatusCode)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health marketsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

// createInvite mints an invite and asserts the raw token came back.
func createInvite(t *testing.T, session *marketsdk.Session, email string) marketsdk.CreateInviteResponse {
	t.Helper()

	resp, err := session.CreateInvite(t.Context(), email)
	require.NoError(t, err)
	require.NotEmpty(t, resp.InviteToken)
	require.Equal(t, "pending", resp.Invite.Status)

	return resp
}

// strPtr and friends build the pointer-field request types.
func strPtr(s string) *string   { return &s }
func i64Ptr(i int64) *int64     { return &i }
func f64Ptr(f float64) *float64 { return &f }
