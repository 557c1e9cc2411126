package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dralley/capctl"
)

func main() {
	root := &cobra.Command{
		Use:   "filecap",
		Short: "Inspect and modify Linux file and process capabilities",
		Long: `filecap reads and writes the file capabilities stored in the
security.capability extended attribute, inspects the capability state
of processes, and runs commands with capabilities raised into the
ambient set.`,
		SilenceUsage: true,
	}

	root.AddCommand(getCmd())
	root.AddCommand(setCmd())
	root.AddCommand(removeCmd())
	root.AddCommand(procCmd())
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH...",
		Short: "Print the file capabilities attached to each PATH",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			for _, path := range args {
				fc, err := capctl.GetFileCaps(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if fc == nil {
					fmt.Printf("%s: no file capabilities\n", path)
					continue
				}
				fmt.Printf("%s: %v\n", path, fc)
			}
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	var (
		permitted   []string
		inheritable []string
		effective   bool
		rootID      uint32
	)

	cmd := &cobra.Command{
		Use:   "set PATH",
		Short: "Attach file capabilities to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var fc capctl.FileCaps
			var err error

			fc.Permitted, err = capSetFromNames(permitted)
			if err != nil {
				return err
			}
			fc.Inheritable, err = capSetFromNames(inheritable)
			if err != nil {
				return err
			}
			fc.Effective = effective
			if c.Flags().Changed("rootid") {
				id := rootID
				fc.RootID = &id
			}
			return fc.SetFile(args[0])
		},
	}

	addCapListFlag(cmd.Flags(), &permitted, "permitted", "p", "capability names for the permitted set")
	addCapListFlag(cmd.Flags(), &inheritable, "inheritable", "i", "capability names for the inheritable set")
	cmd.Flags().BoolVarP(&effective, "effective", "e", false, "set the effective bit")
	cmd.Flags().Uint32Var(&rootID, "rootid", 0, "user namespace root ID (emits a version 3 attribute)")
	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATH...",
		Short: "Remove the file capabilities attached to each PATH",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			for _, path := range args {
				if err := capctl.RemoveFileCaps(path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
}

func procCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proc [PID]",
		Short: "Print the capability state of a process (default: self)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			pid := 0
			if len(args) == 1 {
				var err error
				pid, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid PID %q", args[0])
				}
			}

			st, err := capctl.GetCapState(pid)
			if err != nil {
				return err
			}
			fmt.Printf("effective:   %v\n", st.Effective)
			fmt.Printf("permitted:   %v\n", st.Permitted)
			fmt.Printf("inheritable: %v\n", st.Inheritable)

			// The ambient/bounding/securebits prctl interface only
			// reports on the calling process.
			if pid != 0 && pid != os.Getpid() {
				return nil
			}
			if amb, err := capctl.AmbientProbe(); err == nil {
				fmt.Printf("ambient:     %v\n", amb)
			}
			if bnd, err := capctl.BoundingProbe(); err == nil {
				fmt.Printf("bounding:    %v\n", bnd)
			}
			if sb, err := capctl.GetSecurebits(); err == nil {
				fmt.Printf("securebits:  %v\n", sb)
			}
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	var ambient []string

	cmd := &cobra.Command{
		Use:   "run -- COMMAND [ARG...]",
		Short: "Run a command with capabilities raised into the ambient set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			set, err := capSetFromNames(ambient)
			if err != nil {
				return err
			}

			if !set.IsEmpty() {
				// Ambient capabilities must be in the inheritable set
				// before they can be raised.
				st, err := capctl.GetCapState(0)
				if err != nil {
					return err
				}
				st.Inheritable = st.Inheritable.Union(set)
				if err := st.SetCurrent(); err != nil {
					return fmt.Errorf("updating inheritable set: %w", err)
				}
				it := set.Iter()
				for cp, ok := it.Next(); ok; cp, ok = it.Next() {
					if err := capctl.AmbientRaise(cp); err != nil {
						return fmt.Errorf("raising %v: %w", cp, err)
					}
				}
			}

			path, err := exec.LookPath(args[0])
			if err != nil {
				return err
			}
			return syscall.Exec(path, args, os.Environ())
		},
	}

	addCapListFlag(cmd.Flags(), &ambient, "ambient", "a", "capability names to raise into the ambient set")
	return cmd
}

// addCapListFlag registers a repeatable, comma-separated capability
// name list flag.
func addCapListFlag(fs *pflag.FlagSet, p *[]string, name, short, usage string) {
	fs.StringSliceVarP(p, name, short, nil, usage)
}

func capSetFromNames(names []string) (capctl.CapSet, error) {
	var set capctl.CapSet
	for _, n := range names {
		c, err := capctl.CapFromName(n)
		if err != nil {
			return capctl.CapSet{}, err
		}
		set.Add(c)
	}
	return set, nil
}
