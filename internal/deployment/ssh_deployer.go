package deployment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"labelsheet/internal/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DefaultSSHPort is used when the publish URL has no port
const DefaultSSHPort = "22"

const dialTimeout = 30 * time.Second

// SSHDeployer publishes finished label sheets to a remote directory via SCP.
// It is safe for concurrent use; uploads are serialized over one connection.
type SSHDeployer struct {
	mu             sync.Mutex
	keyPath        string
	knownHostsPath string
	deployURL      string
	port           string
	retry          config.RetryConfig
	client         *ssh.Client
	connected      bool
}

// NewSSHDeployer creates a new SSH deployer for a user@host:path URL
func NewSSHDeployer(deployURL, keyPath string) *SSHDeployer {
	if keyPath == "" {
		keyPath = "deploy.pem"
	}
	return &SSHDeployer{
		keyPath:   keyPath,
		deployURL: deployURL,
		port:      DefaultSSHPort,
		retry:     config.DefaultResilienceConfig.Publish,
	}
}

// WithKnownHosts verifies the server key against a known_hosts file
func (d *SSHDeployer) WithKnownHosts(path string) *SSHDeployer {
	d.knownHostsPath = path
	return d
}

// WithPort overrides the SSH port
func (d *SSHDeployer) WithPort(port string) *SSHDeployer {
	d.port = port
	return d
}

// Target returns the configured user@host:path URL
func (d *SSHDeployer) Target() string {
	return d.deployURL
}

// parseDeployURL parses a deploy URL in format: user@host:path
func parseDeployURL(deployURL string) (user, host, remotePath string, err error) {
	if deployURL == "" {
		return "", "", "", fmt.Errorf("deploy URL is empty")
	}

	// Split by @ to get user and host:path
	parts := strings.SplitN(deployURL, "@", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", "", fmt.Errorf("invalid deploy URL format: expected user@host:path")
	}

	user = parts[0]

	// Split by : to get host and path
	hostParts := strings.SplitN(parts[1], ":", 2)
	if len(hostParts) != 2 || hostParts[0] == "" || hostParts[1] == "" {
		return "", "", "", fmt.Errorf("invalid deploy URL format: expected user@host:path")
	}

	return user, hostParts[0], hostParts[1], nil
}

func (d *SSHDeployer) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if d.knownHostsPath == "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(d.knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts %s: %w", d.knownHostsPath, err)
	}
	return callback, nil
}

// Connect establishes SSH connection
func (d *SSHDeployer) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connect(ctx)
}

func (d *SSHDeployer) connect(ctx context.Context) error {
	if d.connected {
		return nil
	}

	user, host, _, err := parseDeployURL(d.deployURL)
	if err != nil {
		return fmt.Errorf("failed to parse deploy URL: %w", err)
	}

	keyData, err := os.ReadFile(d.keyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH key file %s: %w", d.keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return fmt.Errorf("failed to parse SSH private key: %w", err)
	}

	hostKeyCallback, err := d.hostKeyCallback()
	if err != nil {
		return err
	}

	clientConfig := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: hostKeyCallback,
	}

	addr := net.JoinHostPort(host, d.port)
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return contextError(ctx, fmt.Errorf("failed to connect to SSH server %s: %w", host, err))
	}

	// The handshake only knows about the connection, so cancellation closes it.
	_ = conn.SetDeadline(time.Now().Add(dialTimeout))
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if !stop() {
		if err == nil {
			c.Close()
		}
		return fmt.Errorf("SSH handshake with %s cancelled: %w", host, ctx.Err())
	}
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to SSH server %s: %w", host, err)
	}
	_ = conn.SetDeadline(time.Time{})

	d.client = ssh.NewClient(c, chans, reqs)
	d.connected = true
	log.Info().
		Str("host", host).
		Str("user", user).
		Msg("Successfully connected to SSH server")

	return nil
}

// Disconnect closes SSH connection
func (d *SSHDeployer) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disconnect()
}

func (d *SSHDeployer) disconnect() error {
	if d.client != nil {
		err := d.client.Close()
		d.connected = false
		d.client = nil
		return err
	}
	return nil
}

// Publish uploads content as fileName into the remote directory, retrying failed attempts
func (d *SSHDeployer) Publish(ctx context.Context, fileName string, content []byte) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}

	_, _, remotePath, err := parseDeployURL(d.deployURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse deploy URL: %w", err)
	}
	remoteFilePath := path.Join(remotePath, fileName)

	d.mu.Lock()
	defer d.mu.Unlock()

	err = config.Retry(ctx, d.retry, func(ctx context.Context) error {
		if err := d.connect(ctx); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		if err := d.copyFile(ctx, remoteFilePath, fileName, content); err != nil {
			// drop the connection so the next attempt dials again
			_ = d.disconnect()
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Info().
		Str("remote_path", remoteFilePath).
		Int("size", len(content)).
		Msg("Successfully published file via SCP")

	return remoteFilePath, nil
}

// copyFile streams one file through an "scp -t" session.
// Cancelling ctx closes the client, which unblocks any pending write or wait.
func (d *SSHDeployer) copyFile(ctx context.Context, remoteFilePath, fileName string, content []byte) error {
	client := d.client
	stop := context.AfterFunc(ctx, func() { client.Close() })

	err := streamFile(client, remoteFilePath, fileName, content)
	if !stop() {
		// the client is gone either way
		_ = d.disconnect()
	}
	if err != nil {
		return contextError(ctx, err)
	}
	return nil
}

func streamFile(client *ssh.Client, remoteFilePath, fileName string, content []byte) error {
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}

	if err := session.Start(scpCommand(remoteFilePath)); err != nil {
		return fmt.Errorf("failed to start SCP session: %w", err)
	}

	if _, err := io.WriteString(stdin, scpHeader(fileName, len(content))); err != nil {
		return fmt.Errorf("failed to write SCP header: %w", err)
	}

	if _, err := io.Copy(stdin, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}

	if _, err := stdin.Write([]byte{0}); err != nil {
		return fmt.Errorf("failed to write SCP end marker: %w", err)
	}

	stdin.Close()
	if err := session.Wait(); err != nil {
		return fmt.Errorf("SCP session failed: %w", err)
	}

	return nil
}

// contextError reports a cancelled attempt as the context's error
func contextError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}

// scpCommand builds the remote sink command with the path single-quoted
func scpCommand(remoteFilePath string) string {
	return "scp -t '" + strings.ReplaceAll(remoteFilePath, "'", `'\''`) + "'"
}

// scpHeader is the SCP file record announcing mode, size and name
func scpHeader(fileName string, size int) string {
	return fmt.Sprintf("C0644 %d %s\n", size, fileName)
}

func validateFileName(fileName string) error {
	if fileName == "" || fileName == "." || fileName == ".." || strings.ContainsAny(fileName, "/\\\n") {
		return fmt.Errorf("invalid file name %q", fileName)
	}
	return nil
}
