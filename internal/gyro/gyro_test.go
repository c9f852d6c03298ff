package gyro

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestSourceFreshness(t *testing.T) {
	s := NewSource(500 * time.Millisecond)
	now := time.Now()
	if _, ok := s.Latest(now); ok {
		t.Fatalf("empty source should have no sample")
	}
	s.Push(Sample{Beta: 3, Gamma: -2, Landscape: true, At: now})
	smp, ok := s.Latest(now.Add(400 * time.Millisecond))
	if !ok || smp.Beta != 3 || smp.Gamma != -2 || !smp.Landscape {
		t.Fatalf("want fresh sample, got %+v %v", smp, ok)
	}
	if _, ok := s.Latest(now.Add(600 * time.Millisecond)); ok {
		t.Fatalf("sample older than 500ms should be stale")
	}
	tl, ok := s.Tilt(now)
	if !ok || tl.Beta != 3 || tl.Gamma != -2 || !tl.Landscape {
		t.Fatalf("want tilt from sample, got %+v", tl)
	}
	if s.Granted() {
		t.Fatalf("nothing paired yet")
	}
	s.Grant()
	if !s.Granted() {
		t.Fatalf("want granted")
	}
}

func TestPairing(t *testing.T) {
	p, err := NewPairing("", time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	pin := p.PIN()
	if len(pin) != 6 {
		t.Fatalf("want 6 digit pin, got %q", pin)
	}
	wrong := "000000"
	if pin == wrong {
		wrong = "111111"
	}
	if _, err := p.Pair(wrong); !errors.Is(err, ErrBadPIN) {
		t.Fatalf("want ErrBadPIN, got %v", err)
	}
	tok, err := p.Pair(pin)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	sub, err := p.Verify(tok)
	if err != nil || sub == "" {
		t.Fatalf("verify: %v", err)
	}
	if _, err := p.Verify(tok + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token should fail, got %v", err)
	}
	if _, err := p.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty token should fail, got %v", err)
	}

	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := p.Pair(pin)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	p.now = time.Now
	if _, err := p.Verify(old); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token should fail, got %v", err)
	}
}

func TestPairingRotatesAfterWrongPINs(t *testing.T) {
	p, err := NewPairing("", time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	pin := p.PIN()
	wrong := "000000"
	if pin == wrong {
		wrong = "111111"
	}
	for i := 0; i < MaxPINFailures-1; i++ {
		if _, err := p.Pair(wrong); !errors.Is(err, ErrBadPIN) {
			t.Fatalf("want ErrBadPIN, got %v", err)
		}
	}
	if p.PIN() != pin {
		t.Fatalf("pin should survive %d misses", MaxPINFailures-1)
	}
	// a good pin resets the count
	if _, err := p.Pair(pin); err != nil {
		t.Fatalf("pair: %v", err)
	}
	for i := 0; i < MaxPINFailures-1; i++ {
		_, _ = p.Pair(wrong)
	}
	if p.PIN() != pin {
		t.Fatalf("success should reset the miss count")
	}
	_, _ = p.Pair(wrong)
	if p.fails != 0 {
		t.Fatalf("want pin rotated after %d misses, miss count %d", MaxPINFailures, p.fails)
	}
	if p.PIN() == pin {
		t.Skip("rotation drew the same pin")
	}
	if _, err := p.Pair(pin); !errors.Is(err, ErrBadPIN) {
		t.Fatalf("old pin must stop working, got %v", err)
	}
}

func TestRelayRotatesPINOnGuessing(t *testing.T) {
	ts, _, p := newTestRelay(t)
	pin := p.PIN()
	wrong := "000000"
	if pin == wrong {
		wrong = "999999"
	}
	for i := 0; i < MaxPINFailures; i++ {
		if res, _ := postPIN(t, ts.URL, wrong); res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", res.StatusCode)
		}
	}
	if p.PIN() == pin {
		t.Skip("rotation drew the same pin")
	}
	if res, _ := postPIN(t, ts.URL, pin); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("old pin must stop working after rotation, got %d", res.StatusCode)
	}
}

func TestPairingKeyPersists(t *testing.T) {
	dir := t.TempDir()
	a, err := NewPairing(dir, time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "gyro.key")); err != nil {
		t.Fatalf("key file: %v", err)
	}
	tok, err := a.Pair(a.PIN())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	b, err := NewPairing(dir, time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	if _, err := b.Verify(tok); err != nil {
		t.Fatalf("token should survive a restart: %v", err)
	}
	other, _ := NewPairing("", time.Hour)
	if _, err := other.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("another key must reject the token, got %v", err)
	}
}

func TestPhoneURL(t *testing.T) {
	if got := PhoneURL(":8090", "https://maze.example/"); got != "https://maze.example/" {
		t.Fatalf("public url should win, got %s", got)
	}
	if got := PhoneURL("192.168.1.5:8090", ""); got != "http://192.168.1.5:8090/" {
		t.Fatalf("got %s", got)
	}
	if got := PhoneURL(":8090", ""); !strings.HasPrefix(got, "http://") || !strings.HasSuffix(got, ":8090/") {
		t.Fatalf("got %s", got)
	}
}

func newTestRelay(t *testing.T) (*httptest.Server, *Source, *Pairing) {
	t.Helper()
	src := NewSource(time.Second)
	pg, err := NewPairing("", time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	ts := httptest.NewServer(NewServer("", src, pg).Handler())
	t.Cleanup(ts.Close)
	return ts, src, pg
}

func TestRelayPages(t *testing.T) {
	ts, _, _ := newTestRelay(t)
	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("want ok, got %q", body)
	}

	res, err = http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	if !bytes.Contains(body, []byte("deviceorientation")) {
		t.Fatalf("phone page should stream orientation")
	}

	res, err = http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", res.StatusCode)
	}
}

func postPIN(t *testing.T, url, pin string) (*http.Response, string) {
	t.Helper()
	b, _ := json.Marshal(pairReq{PIN: pin})
	res, err := http.Post(url+"/pair", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	defer res.Body.Close()
	var out pairResp
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res, out.Token
}

func TestRelayStreamsSamples(t *testing.T) {
	ts, src, p := newTestRelay(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	wrong := "000000"
	if p.PIN() == wrong {
		wrong = "999999"
	}
	if res, _ := postPIN(t, ts.URL, wrong); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for a wrong pin, got %d", res.StatusCode)
	}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil || resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("socket without token must be refused, got %v", err)
	}
	if src.Granted() {
		t.Fatalf("no phone should be granted yet")
	}

	res, tok := postPIN(t, ts.URL, p.PIN())
	if res.StatusCode != http.StatusOK || tok == "" {
		t.Fatalf("pairing failed: %d", res.StatusCode)
	}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+tok, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("garbage")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"beta": 4.5, "gamma": -1.5, "landscape": true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if smp, ok := src.Latest(time.Now()); ok {
			if smp.Beta != 4.5 || smp.Gamma != -1.5 || !smp.Landscape {
				t.Fatalf("unexpected sample %+v", smp)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("sample never arrived")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !src.Granted() {
		t.Fatalf("paired phone should be granted")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pg, err := NewPairing("", time.Hour)
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer("127.0.0.1:0", NewSource(0), pg).Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("want clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("relay did not stop")
	}
}
