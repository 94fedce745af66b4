package expedition

import "testing"

func TestMoveAtUnpacksMSBPairFirst(t *testing.T) {
	var buf MoveBuffer
	buf[0] = 0xE1 // 11 10 00 01 -> up, left, down, right

	want := []MoveCode{MoveUp, MoveLeft, MoveDown, MoveRight}
	for i, w := range want {
		if got := buf.MoveAt(i); got != w {
			t.Fatalf("move %d: got %v, want %v", i, got, w)
		}
	}
}

func TestDecodeMovesYieldsExactlyHundredCodes(t *testing.T) {
	var buf MoveBuffer
	for i := range buf {
		buf[i] = 0x1B // 00 01 10 11
	}
	moves := DecodeMoves(buf)
	if len(moves) != 100 {
		t.Fatalf("expected 100 moves, got %d", len(moves))
	}
	for i := 0; i < len(moves); i += 4 {
		got := [4]MoveCode{moves[i], moves[i+1], moves[i+2], moves[i+3]}
		want := [4]MoveCode{MoveDown, MoveRight, MoveLeft, MoveUp}
		if got != want {
			t.Fatalf("group at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestDecodeMovesIgnoresTrailingBytes(t *testing.T) {
	var a, b MoveBuffer
	for i := range a {
		a[i] = 0xE1
		b[i] = 0xE1
	}
	for i := MoveBufferUsed; i < MoveBufferSize; i++ {
		b[i] = 0xFF
	}
	if DecodeMoves(a) != DecodeMoves(b) {
		t.Fatal("bytes 25..31 must not affect the decoded sequence")
	}
}

func TestDecodeMovesIsPure(t *testing.T) {
	var buf MoveBuffer
	for i := range buf {
		buf[i] = byte(i * 37)
	}
	first := DecodeMoves(buf)
	second := DecodeMoves(buf)
	if first != second {
		t.Fatal("decoding the same buffer twice must match")
	}
	for i, c := range first {
		if c > 3 {
			t.Fatalf("move %d: code %d out of range", i, c)
		}
	}
}
