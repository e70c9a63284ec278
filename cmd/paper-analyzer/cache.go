// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harsh1d/research-paper-analyzer/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the task result cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("cache-dir")
		ttl, _ := cmd.Flags().GetDuration("cache-ttl")

		store, err := cache.Open(dir, ttl, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		purged, err := store.PurgeExpired()
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d expired cache entries\n", purged)
		return nil
	},
}

func init() {
	cachePurgeCmd.Flags().String("cache-dir", "cache", "directory for the result cache")
	cachePurgeCmd.Flags().Duration("cache-ttl", 0, "cache entry lifetime (default 24h)")

	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
