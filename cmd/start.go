package cmd

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gochip8/emu"
	"gochip8/emu/chip8"
)

var startCmd = &cobra.Command{
	Use:   "start path/to/rom",
	Short: "load a ROM and start the emulator",
	Args:  cobra.ExactArgs(1),
	Run:   start,
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP("clock", "c", 700, "instruction rate in Hz")
	flags.Int("scale", 12, "window pixels per CHIP-8 pixel")
	flags.Float64("tone", 440, "beep frequency in Hz")
	flags.Bool("halt-on-fault", false, "stop on the first core fault instead of skipping it")
	flags.Bool("debug", false, "log every skipped fault and startup detail")
	flags.Bool("quiet", false, "log errors only")

	flags.Bool("quirk-vf-reset", true, "8xy1/8xy2/8xy3 also reset VF")
	flags.Bool("quirk-shift-vy", false, "8xy6/8xyE shift Vy instead of Vx")
	flags.Bool("quirk-increment-i", false, "Fx55/Fx65 leave I past the copied block")
	flags.Bool("quirk-jump-vx", false, "Bnnn adds Vx instead of V0")
	flags.Bool("quirk-clip", false, "sprites clip at the display edges instead of wrapping")

	cobra.CheckErr(viper.BindPFlags(flags))
}

func start(cmd *cobra.Command, args []string) {
	logger := newLogger(viper.GetBool("debug"), viper.GetBool("quiet"))

	cfg := emu.Config{
		ROMPath:     args[0],
		ClockHz:     viper.GetInt("clock"),
		Scale:       viper.GetInt("scale"),
		ToneHz:      viper.GetFloat64("tone"),
		HaltOnFault: viper.GetBool("halt-on-fault"),
		Quirks: chip8.Quirks{
			VFReset:              viper.GetBool("quirk-vf-reset"),
			ShiftUsesVY:          viper.GetBool("quirk-shift-vy"),
			LoadStoreIncrementsI: viper.GetBool("quirk-increment-i"),
			JumpUsesVX:           viper.GetBool("quirk-jump-vx"),
			ClipSprites:          viper.GetBool("quirk-clip"),
		},
		Logger: logger,
	}

	emulator, err := emu.New(cfg)
	if err != nil {
		logger.Fatal("starting emulator", log.Err(err))
	}
	if err := emulator.Run(); err != nil {
		logger.Fatal("emulation halted", log.Err(err))
	}
}

// newLogger creates a logger with appropriate settings.
func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
