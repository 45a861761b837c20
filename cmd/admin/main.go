package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"padeltour-server/internal/config"
	"padeltour-server/internal/jwt"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "token", "specifies the command (token, simulate)")
var scenarioFile = flag.String("f", "scenario.yaml", "the scenario file for the simulate command")

func main() {
	flag.Parse()

	switch *command {
	case "token":
		email := getEmail()
		if email == "" {
			os.Exit(1)
		}

		if !config.Instance().IsAdmin(email) {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s is not a configured admin\n", email)
		}

		jwt.LoadKeys()
		token, err := jwt.Sign(email)
		if err != nil {
			logrus.WithError(err).Fatal("could not sign token")
		}

		fmt.Println(token)

	case "simulate":
		sc, err := loadScenario(*scenarioFile)
		if err != nil {
			logrus.WithError(err).Fatal("could not load scenario")
		}

		t, err := simulate(sc)
		if err != nil {
			logrus.WithError(err).Fatal("could not simulate")
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			printTable(os.Stdout, t)
		} else if err := printJSON(os.Stdout, t); err != nil {
			logrus.WithError(err).Fatal("could not write output")
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getEmail() string {
	for {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		str, err := reader.ReadString('\n')
		if err != nil {
			logrus.WithError(err).Warn("could not read email")
		}

		str = strings.TrimRight(str, "\r\n")

		if str == "" {
			return ""
		}

		if err := checkmail.ValidateFormat(str); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			continue
		}

		return str
	}
}
