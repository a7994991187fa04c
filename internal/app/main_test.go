package service_test

import (
	"os"
	"testing"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
