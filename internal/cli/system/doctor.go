package system

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/constants"
)

// DoctorCmd runs health checks: both documents must load cleanly, and a
// second running instance is worth warning about because the two processes
// would overwrite each other's saves.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	if _, err := ctx.Records.Load(); err != nil {
		fmt.Printf("✗ records document (%s): %v\n", ctx.Records.Location(), err)
		ok = false
	} else {
		fmt.Printf("✓ records document (%s)\n", ctx.Records.Location())
	}

	if _, err := ctx.Settings.Load(); err != nil {
		fmt.Printf("✗ settings document (%s): %v\n", ctx.Settings.Location(), err)
		ok = false
	} else {
		fmt.Printf("✓ settings document (%s)\n", ctx.Settings.Location())
	}

	if pid, running := otherInstance(); running {
		fmt.Printf("! another %s instance is running (pid %d); concurrent saves overwrite each other\n",
			constants.AppName, pid)
	} else {
		fmt.Println("✓ no other running instance")
	}

	if !ok {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

func otherInstance() (int, bool) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, false
	}
	self := os.Getpid()
	for _, p := range procs {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName && p.Pid() != self {
			return p.Pid(), true
		}
	}
	return 0, false
}
