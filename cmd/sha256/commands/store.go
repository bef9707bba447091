package commands

import (
	"fmt"
	"io/ioutil"

	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/store"
	"github.com/spf13/cobra"
)

var getOutFile string

// NewPutCmd produces a PutCmd which adds files to the store
func NewPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put [file...]",
		Short: "Add files to the store and print their digests",
		Args:  cobra.MinimumNArgs(1),
		RunE:  put,
	}
}

// NewGetCmd produces a GetCmd which reads a blob back from the store
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [digest]",
		Short: "Write the content stored under a digest",
		Args:  cobra.ExactArgs(1),
		RunE:  get,
	}
	cmd.Flags().StringVarP(&getOutFile, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

// NewHasCmd produces a HasCmd which checks whether a digest is stored
func NewHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has [digest]",
		Short: "Print whether content is stored under a digest",
		Args:  cobra.ExactArgs(1),
		RunE:  has,
	}
}

func openStore() (*store.BadgerStore, error) {
	s, err := store.NewBadgerStore(_config.CacheSize, _config.DatabaseDir, _config.Logger())
	if err != nil {
		return nil, fmt.Errorf("Opening store %s: %s", _config.DatabaseDir, err)
	}
	return s, nil
}

func put(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	for _, path := range args {
		data, err := readInput(path)
		if err != nil {
			return fmt.Errorf("Reading %s: %s", path, err)
		}
		d, err := s.Put(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Hex(), path)
	}

	return nil
}

func get(cmd *cobra.Command, args []string) error {
	d, err := common.HexToHash32(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.Get(d)
	if err != nil {
		return err
	}

	if getOutFile != "" {
		return ioutil.WriteFile(getOutFile, data, 0644)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func has(cmd *cobra.Command, args []string) error {
	d, err := common.HexToHash32(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.Has(d)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)

	return nil
}
