package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.td.teradata.com/sandbox/emu6502/internal/config"
	"github.td.teradata.com/sandbox/emu6502/internal/driver"
	"github.td.teradata.com/sandbox/emu6502/internal/log"
	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
	"github.td.teradata.com/sandbox/emu6502/internal/services/memory"
	"github.td.teradata.com/sandbox/emu6502/internal/services/serial"
)

var cfgFile string
var romFile string
var portName string
var maxCycles uint64
var traceOn bool
var stepOn bool
var allOpCodes bool
var disasmStart uint16
var disasmCount int

var rootCmd = &cobra.Command{
	Use:           "emu6502",
	Short:         "emu6502 runs a program image on a cycle counted 6502",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CLIConfig

		// Load 6502 rom
		if cfg.RomFile == "" {
			return fmt.Errorf("no rom specified. Use -r/--rom <file> to specify")
		}

		d, err := driver.New(cfg, driver.WithStepping(stepOn))
		if err != nil {
			return err
		}
		defer func() {
			if err := d.Close(); err != nil {
				log.Warnf("Trouble closing serial port: %v", err)
			}
		}()
		if err = d.LoadRom(cfg.RomFile); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := d.Run(ctx)
		d.Report(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	},
}

var opCodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "Print the opcode table as yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return instructionSet.WriteInstructions(cmd.OutOrStdout(), allOpCodes)
	},
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List the serial ports an instruction mirror can use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := serial.ListPorts()
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No serial ports found")
			return nil
		}
		for _, port := range ports {
			fmt.Fprintln(cmd.OutOrStdout(), port)
		}
		return nil
	},
}

var disasmCmd = &cobra.Command{
	Use:   "disasm",
	Short: "Disassemble the rom",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CLIConfig
		if cfg.RomFile == "" {
			return fmt.Errorf("no rom specified. Use -r/--rom <file> to specify")
		}
		if disasmCount < 0 {
			return fmt.Errorf("invalid count %d. Use -n/--count with zero or more instructions", disasmCount)
		}
		mem, err := memory.New(cfg.Memory.Size)
		if err != nil {
			return err
		}
		if _, err = mem.LoadRom(cfg.RomFile); err != nil {
			return err
		}
		for _, line := range instructionSet.Disassemble(mem.Read, disasmStart, disasmCount) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

// Execute bootstraps the viper
func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file for emu6502")
	rootCmd.PersistentFlags().StringVarP(&romFile, "rom", "r", "", "program image loaded at address 0")
	rootCmd.Flags().StringVarP(&portName, "port", "p", "", "serial port to mirror instructions to")
	rootCmd.Flags().Uint64Var(&maxCycles, "cycles", 0, "stop after this many cycles (0 = no limit)")
	rootCmd.Flags().BoolVarP(&traceOn, "trace", "t", false, "keep an instruction history for the report")
	rootCmd.Flags().BoolVarP(&stepOn, "step", "s", false, "pause after every instruction")

	opCodesCmd.Flags().BoolVarP(&allOpCodes, "all", "a", false, "include undefined opcodes")
	disasmCmd.Flags().Uint16Var(&disasmStart, "start", 0, "address to start from")
	disasmCmd.Flags().IntVarP(&disasmCount, "count", "n", 32, "number of instructions")

	rootCmd.AddCommand(opCodesCmd, portsCmd, disasmCmd)
}

func initConfig() {

	if err := initConfigE(); err != nil {
		log.Fatal("Failed to load configuration: ", err)
		return
	}
}

func initConfigE() error {
	if err := config.NewConfig(cfgFile); err != nil {
		return err
	}
	cfg := config.CLIConfig
	if err := log.Setup(cfg.Log); err != nil {
		return err
	}

	// command line flags win over file and environment
	if romFile != "" {
		cfg.RomFile = romFile
	}
	if portName != "" {
		cfg.Serial.PortName = portName
	}
	if maxCycles > 0 {
		cfg.CPU.MaxCycles = maxCycles
	}
	if traceOn {
		cfg.Trace.Enabled = true
	}
	return nil
}
