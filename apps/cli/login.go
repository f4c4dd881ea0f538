package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/user"
)

type (
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
		Error string    `json:"error"`
	}
)

// login exchanges the credentials for a token and prints it.
func (cli *commandLine) login(apiURL, email, pwd string) error {
	body, err := json.Marshal(loginRequest{Email: email, Password: pwd})
	if err != nil {
		return err
	}

	url := strings.TrimRight(apiURL, "/") + "/api/login"
	resp, err := cli.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "posting credentials")
	}
	defer resp.Body.Close()

	var data loginResponse
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return errors.Wrapf(err, "decoding response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", data.Error)
	}

	fmt.Fprintf(cli.out, "Logged in as %s <%s>\n", data.User.Name, data.User.Email)
	fmt.Fprintln(cli.out, data.Token)
	return nil
}
