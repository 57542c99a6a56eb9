package cli

import "testing"

func TestRunUnknownCommandIsUsageError(t *testing.T) {
	if code := Run([]string{"no-such-command"}); code != ExitUsageErr {
		t.Fatalf("Run() = %d, want %d", code, ExitUsageErr)
	}
}

func TestRunKeysWithoutArgumentsIsUsageError(t *testing.T) {
	if code := Run([]string{"keys"}); code != ExitUsageErr {
		t.Fatalf("Run() = %d, want %d", code, ExitUsageErr)
	}
}

func TestRunVersion(t *testing.T) {
	if code := Run([]string{"version"}); code != ExitOK {
		t.Fatalf("Run() = %d, want %d", code, ExitOK)
	}
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	if code := Run(nil); code != ExitOK {
		t.Fatalf("Run() = %d, want %d", code, ExitOK)
	}
}
