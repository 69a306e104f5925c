package cryptox

import "testing"

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !CheckPassword("s3cret", digest) {
		t.Fatalf("CheckPassword rejected the original plaintext")
	}
}

func TestHashPassword_SaltRandomization(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
	if !CheckPassword("same-password", a) || !CheckPassword("same-password", b) {
		t.Fatalf("both digests must verify against the original plaintext")
	}
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("battery staple", digest) {
		t.Fatalf("CheckPassword accepted a wrong plaintext")
	}
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("CheckPassword accepted a non-bcrypt digest")
	}
}
