package hibp

import "testing"

func TestDigest(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
	}{
		{
			name:     "known_value",
			password: "password",
			expected: "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8",
		},
		{
			name:     "empty_string",
			password: "",
			expected: "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709",
		},
		{
			name:     "unicode",
			password: "pässword",
			expected: "23B74494475F5F874980B7676D511E23D886DA64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := Digest(tt.password)

			if digest != tt.expected {
				t.Errorf("Digest(%q) = %s, want %s", tt.password, digest, tt.expected)
			}

			if len(digest) != DigestLength {
				t.Errorf("Digest length = %d, want %d", len(digest), DigestLength)
			}

			// Deterministic across repeated calls
			if again := Digest(tt.password); again != digest {
				t.Errorf("Digest(%q) not stable: %s vs %s", tt.password, digest, again)
			}
		})
	}
}

func TestSplitDigest(t *testing.T) {
	digest := Digest("correct horse battery staple")

	prefix, suffix := SplitDigest(digest)

	if len(prefix) != PrefixLength {
		t.Errorf("prefix length = %d, want %d", len(prefix), PrefixLength)
	}
	if len(suffix) != DigestLength-PrefixLength {
		t.Errorf("suffix length = %d, want %d", len(suffix), DigestLength-PrefixLength)
	}
	if prefix+suffix != digest {
		t.Errorf("prefix+suffix = %s, want %s", prefix+suffix, digest)
	}
}
