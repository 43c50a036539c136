package webhook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignKnownVector(t *testing.T) {
	body := []byte(`{"chat_id":42,"content":"/group 2"}`)
	require.Equal(t,
		"d8ddf75568ffb8aa759bbaeb0bd6421d57a016d1bed693236a129ac5b3f2c270",
		Sign(body, "my-secret"))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"chat_id":42,"content":"/group 2"}`)
	secret := "my-secret"
	sig := Sign(body, secret)

	require.True(t, VerifySignature(body, sig, secret))
	require.False(t, VerifySignature(body, "", secret), "missing header")
	require.False(t, VerifySignature(body, sig, "other-secret"))
	require.False(t, VerifySignature([]byte(`{"chat_id":43}`), sig, secret), "tampered body")
	require.False(t, VerifySignature(body, strings.ToUpper(sig), secret), "comparison is case-sensitive")
	require.False(t, VerifySignature(body, sig[:len(sig)-2], secret), "truncated signature")
}
