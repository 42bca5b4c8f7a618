package memory_test

import (
	"testing"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/memory"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/storetest"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) vacation.Store { return memory.New() })
}
