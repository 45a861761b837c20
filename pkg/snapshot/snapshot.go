package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces snapshot files to be rewritten when set to a non-empty value
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	lock      sync.Mutex
	callCount = make(map[string]int)
)

// Validate compares obj, encoded as indented JSON, with testdata/{test name}-{n}.json
// n counts the calls made by the same test. A missing file fails the test unless UpdateEnv is set.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	lock.Lock()
	call := callCount[name]
	callCount[name] = call + 1
	lock.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	if os.Getenv(UpdateEnv) != "" {
		write(t, filename, objJSON)
		return
	}

	expects, err := readSnapshot(filename)
	if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s (set %s=1 to rewrite)", filename, UpdateEnv)
	}
}

func readSnapshot(filename string) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("snapshot %s is missing (set %s=1 to write it)", filename, UpdateEnv)
	} else if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	return b, nil
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
