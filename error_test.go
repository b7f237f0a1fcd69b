// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"code.hybscloud.com/tyenum"
)

func TestTryNew(t *testing.T) {
	e, err := tyenum.TryNew[marker1](number, int32(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e == nil {
		t.Fatal("expected a container")
	}
	if got := doOp(e); got != -34 {
		t.Fatalf("got %d, want -34", got)
	}
}

func TestTryNewMismatch(t *testing.T) {
	e, err := tyenum.TryNew[marker1](number, int64(5))
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if e != nil {
		t.Fatal("expected nil container on mismatch")
	}
	if !errors.Is(err, tyenum.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
	if errors.Is(err, tyenum.ErrBorrow) {
		t.Fatal("mismatch error matched ErrBorrow")
	}

	var te *tyenum.Error
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *tyenum.Error", err)
	}
	if te.Kind != tyenum.KindMismatch || te.Schema != "Number" ||
		te.Marker != "tyenum_test.marker1" || te.Payload != "int64" {
		t.Fatalf("unexpected fields: %+v", *te)
	}
	want := `tyenum: mismatch in Number (marker tyenum_test.marker1, payload int64): marker binds int32 as "a"`
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTryNewUndeclaredMarker(t *testing.T) {
	_, err := tyenum.TryNew[stray](number, int32(5))
	if !errors.Is(err, tyenum.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
	if !strings.Contains(err.Error(), "marker is not declared") {
		t.Fatalf("unexpected message: %s", err)
	}
}

func TestErrorWrapping(t *testing.T) {
	_, err := tyenum.TryNew[stray](number, "x")
	wrapped := fmt.Errorf("building value: %w", err)
	if !errors.Is(wrapped, tyenum.ErrMismatch) {
		t.Fatalf("wrapped error %v does not match ErrMismatch", wrapped)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *tyenum.Error
		want string
	}{
		{&tyenum.Error{Kind: tyenum.KindBorrow}, "tyenum: borrow"},
		{
			&tyenum.Error{Kind: tyenum.KindSchema, Schema: "S", Detail: "no entries"},
			"tyenum: schema in S: no entries",
		},
		{
			&tyenum.Error{Kind: tyenum.KindMismatch, Payload: "int"},
			"tyenum: mismatch (payload int)",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPanicValueIsError(t *testing.T) {
	e := tyenum.New[marker1](number, int32(1))
	e.Drop()

	r := func() (r any) {
		defer func() { r = recover() }()
		tyenum.MatchRef(e,
			tyenum.On(func(int32) int { return 0 }),
			tyenum.On(func(int64) int { return 0 }),
		)
		return nil
	}()

	err, ok := r.(error)
	if !ok {
		t.Fatalf("panic value %v is not an error", r)
	}
	if !errors.Is(err, tyenum.ErrDischarged) {
		t.Fatalf("got %v, want ErrDischarged", err)
	}
	want := "tyenum: discharged in Number: MatchRef on a discharged container"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
