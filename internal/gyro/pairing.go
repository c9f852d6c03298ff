package gyro

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const Issuer = "MazeRun"

// MaxPINFailures wrong guesses in a row draw a new PIN.
const MaxPINFailures = 5

var (
	ErrBadPIN       = errors.New("gyro: wrong pairing pin")
	ErrInvalidToken = errors.New("gyro: invalid token")
)

// Pairing issues tokens to phones that know the current PIN. Only the bcrypt
// hash of the PIN is checked against; the plain PIN is kept for display.
type Pairing struct {
	mu      sync.Mutex
	pin     string
	pinHash []byte
	fails   int
	key     []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewPairing loads or creates the signing key in dir (gyro.key). An empty dir
// keeps the key in memory only.
func NewPairing(dir string, ttl time.Duration) (*Pairing, error) {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	key, err := loadKey(dir)
	if err != nil {
		return nil, err
	}
	p := &Pairing{key: key, ttl: ttl, now: time.Now}
	if _, err := p.Rotate(); err != nil {
		return nil, err
	}
	return p, nil
}

func loadKey(dir string) ([]byte, error) {
	var path string
	if dir != "" {
		path = filepath.Join(dir, "gyro.key")
		if key, err := os.ReadFile(path); err == nil && len(key) >= 32 {
			return key, nil
		}
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("gyro: signing key: %w", err)
	}
	if path != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("gyro: signing key: %w", err)
		}
		if err := os.WriteFile(path, key, 0o600); err != nil {
			return nil, fmt.Errorf("gyro: signing key: %w", err)
		}
	}
	return key, nil
}

func (p *Pairing) PIN() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pin
}

// Rotate draws a new 6-digit PIN. Tokens already issued stay valid.
func (p *Pairing) Rotate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("gyro: pin: %w", err)
	}
	pin := fmt.Sprintf("%06d", n.Int64())
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("gyro: pin: %w", err)
	}
	p.mu.Lock()
	p.pin, p.pinHash, p.fails = pin, hash, 0
	p.mu.Unlock()
	return pin, nil
}

// Pair trades a PIN for a signed session token. After MaxPINFailures wrong
// PINs the PIN is rotated.
func (p *Pairing) Pair(pin string) (string, error) {
	p.mu.Lock()
	hash := p.pinHash
	p.mu.Unlock()
	if bcrypt.CompareHashAndPassword(hash, []byte(pin)) != nil {
		p.mu.Lock()
		p.fails++
		rotate := p.fails >= MaxPINFailures
		p.mu.Unlock()
		if rotate {
			if _, err := p.Rotate(); err != nil {
				log.Println("gyro: rotate pin:", err)
			} else {
				log.Println("gyro: too many wrong pins, pin rotated")
			}
		}
		return "", ErrBadPIN
	}
	p.mu.Lock()
	p.fails = 0
	p.mu.Unlock()
	now := p.now()
	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"iss": Issuer,
		"iat": now.Unix(),
		"exp": now.Add(p.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("gyro: sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the pairing session id carried by tok.
func (p *Pairing) Verify(tok string) (string, error) {
	if tok == "" {
		return "", ErrInvalidToken
	}
	t, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return p.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !t.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	sub, err := t.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
