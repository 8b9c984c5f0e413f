// Package chainmsgtest provides test utilities for message
// implementations: address and coin fixtures, a registry harness,
// and a generic transcoding compliance suite.
package chainmsgtest

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/blockberries/chainmsg"
)

// RunTranscodableSuite checks the conversion laws for D against the
// given valid samples:
//   - Decode(Encode(m)) == m,
//   - the same holds after the wire form goes through cramberry bytes,
//   - encoding is deterministic,
//   - concurrent decodes of one wire value agree.
func RunTranscodableSuite[W any, D chainmsg.Transcodable[W, D]](t *testing.T, samples []D) {
	t.Helper()

	if len(samples) == 0 {
		t.Fatal("no samples")
	}

	t.Run("type_url", func(t *testing.T) {
		var zero D
		url := zero.TypeURL()
		if !strings.HasPrefix(url, "/") {
			t.Errorf("type URL %q must start with /", url)
		}
		for i, m := range samples {
			if m.TypeURL() != url {
				t.Errorf("sample %d: type URL %q != %q", i, m.TypeURL(), url)
			}
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for i, m := range samples {
			got, err := m.Decode(m.Encode())
			if err != nil {
				t.Fatalf("sample %d: decode of encoded message failed: %v", i, err)
			}
			if !reflect.DeepEqual(got, m) {
				t.Errorf("sample %d: round trip mismatch:\n got  %+v\n want %+v", i, got, m)
			}
		}
	})

	t.Run("round_trip_bytes", func(t *testing.T) {
		for i, m := range samples {
			w := m.Encode()
			data, err := cramberry.Marshal(&w)
			if err != nil {
				t.Fatalf("sample %d: marshal failed: %v", i, err)
			}
			var out W
			if err := cramberry.Unmarshal(data, &out); err != nil {
				t.Fatalf("sample %d: unmarshal failed: %v", i, err)
			}
			got, err := m.Decode(out)
			if err != nil {
				t.Fatalf("sample %d: decode failed: %v", i, err)
			}
			if !reflect.DeepEqual(got, m) {
				t.Errorf("sample %d: byte round trip mismatch:\n got  %+v\n want %+v", i, got, m)
			}
		}
	})

	t.Run("deterministic_encoding", func(t *testing.T) {
		for i, m := range samples {
			w1, w2 := m.Encode(), m.Encode()
			b1, err := cramberry.Marshal(&w1)
			if err != nil {
				t.Fatalf("sample %d: marshal failed: %v", i, err)
			}
			b2, err := cramberry.Marshal(&w2)
			if err != nil {
				t.Fatalf("sample %d: marshal failed: %v", i, err)
			}
			if string(b1) != string(b2) {
				t.Errorf("sample %d: non-deterministic encoding", i)
			}
		}
	})

	t.Run("concurrent_decode", func(t *testing.T) {
		m := samples[0]
		w := m.Encode()
		var wg sync.WaitGroup
		errs := make(chan string, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := m.Decode(w)
				if err != nil {
					errs <- err.Error()
					return
				}
				if !reflect.DeepEqual(got, m) {
					errs <- "mismatch"
				}
			}()
		}
		wg.Wait()
		close(errs)
		for e := range errs {
			t.Errorf("concurrent decode: %s", e)
		}
	})
}
