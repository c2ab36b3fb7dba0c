package main

import (
	"flag"
	"fmt"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Program() string {
	return v.r.program + " version"
}

func (v *versionCmd) FlagSet() *flag.FlagSet {
	return nil
}

func (v *versionCmd) Run() error {
	fmt.Printf("%s version %s\n", v.r.program, version)
	if commit != "" {
		fmt.Printf("commit: %s\n", commit)
	}
	if date != "" {
		fmt.Printf("built: %s\n", date)
	}
	return nil
}
