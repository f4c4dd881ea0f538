package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/solvo/core/health"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	client    *http.Client
	out       io.Writer
	apiURL    string // eg. http://localhost:3000
	healthURL string
	policy    health.Policy
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  health [-url URL]              - check that the API is up")
	fmt.Fprintln(cli.out, "  login -email EMAIL [-url URL]  - log in and print the API token")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	healthCmd := flag.NewFlagSet("health", flag.ContinueOnError)
	healthCmd.SetOutput(cli.out)
	healthURL := healthCmd.String("url", cli.healthURL, "The health endpoint.")

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginCmd.SetOutput(cli.out)
	loginEmail := loginCmd.String("email", "", "The account email. The password will be prompted next.")
	loginURL := loginCmd.String("url", cli.apiURL, "The API base URL.")

	switch args[1] {
	case "health":
		if err := healthCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.health(*healthURL)
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginURL, *loginEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
