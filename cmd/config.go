package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/config"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/pikbatch/pikbatch/icon"
	"github.com/pikbatch/pikbatch/style"
	"github.com/pikbatch/pikbatch/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// persistConfig writes viper's state, creating the config file on first use.
func persistConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}

// parseValue converts raw CLI input into the type of the key's default.
func parseValue(key, raw string) (any, error) {
	switch config.Default[key].Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", key, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", key, raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys with their defaults and current values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		fields := lo.Values(config.Default)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(key string, _ int) config.Field {
				field, ok := config.Default[key]
				if !ok {
					handleErr(errUnknownKey(key))
				}
				return field
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())
			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if _, ok := config.Default[args[0]]; !ok {
			handleErr(errUnknownKey(args[0]))
		}

		cmd.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change the value of a key and save it",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		value, err := parseValue(key, args[1])
		handleErr(err)

		viper.Set(key, value)
		handleErr(persistConfig())

		cmd.Printf(
			"%s %s = %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			exists, err := filesystem.API().Exists(path)
			handleErr(err)
			if exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		cmd.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore keys to their default values",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		keys := args
		if lo.Must(cmd.Flags().GetBool("all")) {
			keys = lo.Keys(config.Default)
		}

		if len(keys) == 0 {
			handleErr(errors.New("name at least one key or pass --all"))
		}

		for _, key := range keys {
			field, ok := config.Default[key]
			if !ok {
				handleErr(errUnknownKey(key))
			}
			viper.Set(key, field.Value)
		}

		handleErr(persistConfig())

		sort.Strings(keys)
		for _, key := range keys {
			cmd.Printf(
				"%s %s = %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(key),
				style.Fg(color.Yellow)(fmt.Sprint(config.Default[key].Value)),
			)
		}
	},
}
