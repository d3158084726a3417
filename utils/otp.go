package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const otpTTL = 5 * time.Minute

// memOTPStore is the fallback store used when the OTP redis client is
// unavailable. Codes expire on read.
type memOTPStore struct {
	mu    sync.Mutex
	codes map[string]memOTPEntry
}

type memOTPEntry struct {
	code    string
	expires time.Time
}

var memOTP = &memOTPStore{codes: make(map[string]memOTPEntry)}

func (s *memOTPStore) set(key, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[key] = memOTPEntry{code: code, expires: time.Now().Add(ttl)}
}

func (s *memOTPStore) take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[key]
	if !ok {
		return "", false
	}
	delete(s.codes, key)
	if time.Now().After(entry.expires) {
		return "", false
	}
	return entry.code, true
}

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8 // Calculate the required number of bytes.
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// InitiateLoginOTP generates an OTP for the given phone number, stores it
// with a 5-minute TTL (redis when available, in-memory otherwise) and "sends"
// it. Delivery is a simulation: the code is written to the log, matching the
// demo SMS behavior.
func InitiateLoginOTP(phoneNumber string) error {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	otpKey := fmt.Sprintf("otp:%s", phoneNumber)

	if client := GetOTPCacheClient(); client != nil {
		ctx := context.Background()
		if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
			return fmt.Errorf("failed to store OTP: %w", err)
		}
	} else {
		memOTP.set(otpKey, otp, otpTTL)
	}

	GetLogger().Sugar().Infof("Sending SMS to %s: Your NEXUS code is %s. It expires in 5 minutes.", phoneNumber, otp)
	return nil
}

// VerifyLoginOTP compares the provided OTP against the stored one and
// consumes it on success.
func VerifyLoginOTP(phoneNumber, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:%s", phoneNumber)

	if client := GetOTPCacheClient(); client != nil {
		ctx := context.Background()
		storedOTP, err := client.Get(ctx, otpKey).Result()
		if err != nil {
			if err == redis.Nil {
				return fmt.Errorf("OTP not found or expired")
			}
			return fmt.Errorf("failed to retrieve OTP: %w", err)
		}
		if storedOTP != providedOTP {
			return fmt.Errorf("OTP does not match")
		}
		if err := client.Del(ctx, otpKey).Err(); err != nil {
			GetLogger().Sugar().Warnf("Failed to delete OTP after verification: %v", err)
		}
		return nil
	}

	storedOTP, ok := memOTP.take(otpKey)
	if !ok {
		return fmt.Errorf("OTP not found or expired")
	}
	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}
	return nil
}
