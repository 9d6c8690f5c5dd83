package hashing

import "testing"

func TestSHA256HexKnownVector(t *testing.T) {
	got := SHA256Hex([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSHA256HexDeterministic(t *testing.T) {
	data := []byte{0, 1, 2, 255, 254, 253}
	first := SHA256Hex(data)
	for i := 0; i < 10; i++ {
		if got := SHA256Hex(data); got != first {
			t.Fatalf("digest changed between calls: %s vs %s", first, got)
		}
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
}

func TestSHA256HexDistinguishesInputs(t *testing.T) {
	if SHA256Hex([]byte("a")) == SHA256Hex([]byte("b")) {
		t.Fatal("different inputs produced the same digest")
	}
}
