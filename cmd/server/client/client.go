// Package client provides test commands for the mech armor gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the mech armor API",
	Long:  `Client commands allow you to test the mech armor API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(getDraftCmd)
	ClientCmd.AddCommand(importMTFCmd)

	// Allocation commands
	ClientCmd.AddCommand(applyPresetCmd)
	ClientCmd.AddCommand(maximizeCmd)
	ClientCmd.AddCommand(setLocationCmd)

	// Loadout commands
	ClientCmd.AddCommand(saveLoadoutCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createArmorClient creates an armor service client
func createArmorClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call runs one request against the armor service with the command timeout
func call(method string, req, resp interface{}) error {
	client, cleanup, err := createArmorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Call(ctx, method, req, resp); err != nil {
		return describe(method, err)
	}
	return nil
}

// describe turns a status error back into a readable message, listing any findings the server
// attached
func describe(method string, err error) error {
	converted := errors.FromGRPCError(err)
	msg := fmt.Sprintf("%s failed: %s", method, errors.GetMessage(converted))

	if findings, ok := errors.GetMeta(converted)["errors"].([]interface{}); ok {
		for _, f := range findings {
			msg += fmt.Sprintf("\n  - %v", f)
		}
	}
	return fmt.Errorf("%s", msg)
}
