package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

const (
	genesisSubCmd = "genesis"
	mintSubCmd    = "mint"
	verifySubCmd  = "verify"
	inspectSubCmd = "inspect"
)

type configFlags struct {
	Quiet bool `long:"quiet" short:"q" description:"Don't write logs to stderr"`
}

type genesisConfig struct{}

type mintConfig struct {
	Prev string  `long:"prev" short:"p" description:"Hash of the predecessor block (encoded in hex)" required:"true"`
	Data *string `long:"data" short:"d" description:"Payload of the block, read from stdin when not provided"`
}

type verifyConfig struct {
	Prev string `long:"prev" short:"p" description:"Hash of the predecessor block (encoded in hex)" required:"true"`
}

type inspectConfig struct{}

//Conf configures where a command reads and writes
type Conf struct {
	//Logs will be written to the writer
	LogWriter io.Writer

	//Blocks and payloads are read from here
	Stdin io.Reader

	//Results are written here
	Stdout io.Writer
}

//DefaultConf returns sensible defaults
func DefaultConf() *Conf {
	return &Conf{
		LogWriter: os.Stderr,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}
}

func parseCommandLine(args []string) (subCommand string, cfg *configFlags, config interface{}, err error) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	genesisConf := &genesisConfig{}
	parser.AddCommand(genesisSubCmd, "Prints the genesis hash",
		"Prints the hash of the genesis block, use it as --prev for the first block of a chain", genesisConf)

	mintConf := &mintConfig{}
	parser.AddCommand(mintSubCmd, "Mints a new block",
		"Mints a block on top of --prev with a fresh keypair and writes it to stdout (encoded in hex)", mintConf)

	verifyConf := &verifyConfig{}
	parser.AddCommand(verifySubCmd, "Verifies a block",
		"Reads a block from stdin (encoded in hex) and verifies it as the successor of --prev", verifyConf)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Dumps a block",
		"Reads a block from stdin (encoded in hex) and dumps its fields", inspectConf)

	_, err = parser.ParseArgs(args)
	if err != nil {
		return "", nil, nil, err
	}

	switch parser.Command.Active.Name {
	case genesisSubCmd:
		config = genesisConf
	case mintSubCmd:
		config = mintConf
	case verifySubCmd:
		config = verifyConf
	case inspectSubCmd:
		config = inspectConf
	}

	return parser.Command.Active.Name, cfg, config, nil
}
