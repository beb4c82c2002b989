package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string    `cbor:"name"`
	At   time.Time `cbor:"at"`
	Tags []string  `cbor:"tags,omitempty"`
}

func TestMarshal_KeepsNanoseconds(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.UTC)

	data, err := Marshal(sample{Name: "a", At: at})
	req.NoError(err)

	var out sample
	req.NoError(Unmarshal(data, &out))
	req.True(at.Equal(out.At))
	req.Equal("a", out.Name)
}

func TestMarshal_Deterministic(t *testing.T) {
	req := require.New(t)
	first, err := Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	req.NoError(err)
	second, err := Marshal(map[string]int{"c": 3, "a": 1, "b": 2})
	req.NoError(err)
	req.Equal(first, second)
}
