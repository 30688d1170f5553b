// internal/credentials/store.go
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"

	"github.com/law-makers/profilehunt/internal/provider"
)

const (
	// KeyringService is the service name for keyring storage
	KeyringService = "profilehunt"
	// KeyringUser is the account the search API key is stored under
	KeyringUser = "serper-api-key"
	// EnvVar takes precedence over the keyring
	EnvVar = "SERPER_API_KEY"
)

// Source says where a resolved key came from
type Source string

const (
	SourceNone    Source = ""
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

// Resolve returns the search API key from the environment, then the OS keyring.
// It returns provider.ErrMissingAPIKey when neither holds one.
func Resolve() (string, error) {
	key, src := lookup()
	if src == SourceNone {
		return "", provider.NewProviderError(provider.ErrCodeMissingCredential,
			fmt.Sprintf("set %s or run 'profilehunt key set'", EnvVar), provider.ErrMissingAPIKey)
	}
	log.Debug().Str("source", string(src)).Msg("API key resolved")
	return key, nil
}

// GetSource reports where Resolve would find the key, without returning it
func GetSource() Source {
	_, src := lookup()
	return src
}

// Store saves key in the OS keyring
func Store(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key is empty")
	}
	if err := keyring.Set(KeyringService, KeyringUser, key); err != nil {
		return fmt.Errorf("failed to save to keyring: %w", err)
	}
	return nil
}

// Delete removes the stored key. Deleting a missing key is not an error.
func Delete() error {
	err := keyring.Delete(KeyringService, KeyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete from keyring: %w", err)
	}
	return nil
}

func lookup() (string, Source) {
	if key := strings.TrimSpace(os.Getenv(EnvVar)); key != "" {
		return key, SourceEnv
	}

	key, err := keyring.Get(KeyringService, KeyringUser)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Debug().Err(err).Msg("Keyring unavailable")
		}
		return "", SourceNone
	}
	if key = strings.TrimSpace(key); key == "" {
		return "", SourceNone
	}
	return key, SourceKeyring
}

// Mask hides all but the last four characters of key
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
