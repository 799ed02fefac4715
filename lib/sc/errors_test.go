package sc

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsAreOnlySelfEqual(t *testing.T) {
	if errors.Is(ErrTrackNotStreamable, ErrTrackNotDownloadable) {
		t.Fatal("not-streamable must not equal not-downloadable")
	}
	if errors.Is(ErrTrackNotDownloadable, ErrTrackNotStreamable) {
		t.Fatal("not-downloadable must not equal not-streamable")
	}
	if !errors.Is(ErrTrackNotStreamable, ErrTrackNotStreamable) {
		t.Fatal("kinds must be reflexive")
	}
	if !errors.Is(ErrTrackNotDownloadable, ErrTrackNotDownloadable) {
		t.Fatal("kinds must be reflexive")
	}
}

func TestErrorMessageEquality(t *testing.T) {
	if !errors.Is(apiError("expected location header"), apiError("expected location header")) {
		t.Fatal("same kind and message must be equal")
	}
	if errors.Is(apiError("a"), apiError("b")) {
		t.Fatal("same kind with different messages must not be equal")
	}
	if errors.Is(apiError("a"), invalidFilter("a")) {
		t.Fatal("different kinds must not be equal")
	}

	// A target with no message matches any error of its kind.
	if !errors.Is(apiError("anything"), &Error{Kind: KindAPI}) {
		t.Fatal("bare kind target must match any message")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := httpError(fmt.Errorf("during transfer: %w", cause))

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must be reachable through the chain")
	}
}

func TestErrorStrings(t *testing.T) {
	tests := map[error]string{
		ErrTrackNotDownloadable: "the track is not available for download",
		ErrTrackNotStreamable:   "the track is not available for streaming",
		apiError("boom"):        "soundcloud error: boom",
		invalidFilter("nope"):   "invalid filter: nope",
	}
	for err, want := range tests {
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}
