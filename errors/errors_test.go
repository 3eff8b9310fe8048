package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_Configuration(t *testing.T) {
	err := Configuration("oracle")
	if err.Code != ErrCodeConfiguration {
		t.Errorf("expected CONFIGURATION, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("CONFIGURATION should not be retryable")
	}
	if err.Details["provider"] != "oracle" {
		t.Errorf("expected provider=oracle, got %v", err.Details["provider"])
	}
	if !strings.Contains(err.Error(), "oracle") {
		t.Errorf("expected provider name in message, got %q", err.Error())
	}
}

func TestAppError_ArtifactNotFound(t *testing.T) {
	err := ArtifactNotFound("postgresql", "/opt/engines/postgresql/query_engine.wasm")
	if err.Code != ErrCodeArtifactNotFound {
		t.Errorf("expected ARTIFACT_NOT_FOUND, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("ARTIFACT_NOT_FOUND should be retryable")
	}
	if err.Details["path"] != "/opt/engines/postgresql/query_engine.wasm" {
		t.Errorf("expected expected-path detail, got %v", err.Details["path"])
	}
	if !strings.Contains(err.Error(), "query_engine.wasm") {
		t.Errorf("expected path in message, got %q", err.Error())
	}
}

func TestAppError_ModuleLink_Unwrap(t *testing.T) {
	cause := fmt.Errorf("invalid magic number")
	err := ModuleLink("mysql", cause)
	if err.Code != ErrCodeModuleLink {
		t.Errorf("expected MODULE_LINK, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("MODULE_LINK should be retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_ModuleInit(t *testing.T) {
	err := ModuleInit("sqlite", fmt.Errorf("trap: unreachable"))
	if err.Code != ErrCodeModuleInit {
		t.Errorf("expected MODULE_INIT, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("MODULE_INIT should be retryable")
	}
}

func TestAppError_New_RetryableDetection(t *testing.T) {
	if New(ErrCodeModuleLink, "boom").Retryable != true {
		t.Error("MODULE_LINK should be retryable via New")
	}
	if New(ErrCodeConfiguration, "bad").Retryable != false {
		t.Error("CONFIGURATION should not be retryable via New")
	}
}

func TestHasCode_WrappedChain(t *testing.T) {
	inner := ArtifactNotFound("sqlserver", "/tmp/x.wasm")
	wrapped := fmt.Errorf("resolve: %w", inner)
	if !HasCode(wrapped, ErrCodeArtifactNotFound) {
		t.Error("expected HasCode to see through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, ErrCodeModuleInit) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("expected HasCode to reject non-AppError errors")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(ModuleInit("mysql", nil)) {
		t.Error("MODULE_INIT should be retryable")
	}
	if IsRetryable(Configuration("oracle")) {
		t.Error("CONFIGURATION should not be retryable")
	}
	if IsRetryable(fmt.Errorf("plain")) {
		t.Error("plain errors should not be retryable")
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := New(ErrCodeInternal, "x").WithDetail("stage", "compile")
	if err.Details["stage"] != "compile" {
		t.Errorf("expected stage detail, got %v", err.Details)
	}
}
