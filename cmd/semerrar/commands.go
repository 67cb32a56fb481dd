package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/client"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/onboarding"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/wizardui"
	"github.com/spf13/pflag"
)

func (a *app) flags(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(a.stdout)
	return flagSet
}

func (a *app) wizard(ctx context.Context, args []string) error {
	var restart bool
	flagSet := a.flags("wizard")
	flagSet.BoolVar(&restart, "restart", false, "discard saved answers and start over")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	wizard := onboarding.NewWizard(a.store, onboarding.DefaultScreens())
	if restart {
		if err := wizard.Restart(); err != nil {
			return err
		}
	} else {
		wizard.Resume()
	}
	return wizardui.Run(ctx, wizard)
}

func (a *app) summary(args []string) error {
	var asJSON bool
	flagSet := a.flags("summary")
	flagSet.BoolVar(&asJSON, "json", false, "print the summary as JSON")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	profile, err := onboarding.LoadProfile(a.store)
	if errors.Is(err, onboarding.ErrRequired) {
		return fmt.Errorf("questionário incompleto, rode `semerrar wizard`: %w", err)
	}
	if err != nil {
		return err
	}
	summary, err := profile.Summarize()
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(a.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}
	fmt.Fprintln(a.stdout, wizardui.RenderSummary(wizardui.DefaultStyles(), profile, summary))
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	var name, email, password string
	flagSet := a.flags("signup")
	flagSet.StringVar(&name, "nome", "", "display name")
	flagSet.StringVar(&email, "email", "", "account email")
	flagSet.StringVar(&password, "senha", "", "password (read from stdin when empty)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if name == "" || email == "" {
		return errors.New("signup requires --nome and --email")
	}
	if password == "" {
		var err error
		if password, err = a.readPassword(); err != nil {
			return err
		}
	}

	user, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return describeAPIError(err)
	}
	if err := a.saveAccount(user.Email, user.Name, ""); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Conta criada para %s. Use `semerrar login` para entrar.\n", user.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	var email, password string
	storedEmail, _ := a.store.Get(onboarding.KeyUserEmail)
	flagSet := a.flags("login")
	flagSet.StringVar(&email, "email", storedEmail, "account email")
	flagSet.StringVar(&password, "senha", "", "password (read from stdin when empty)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if email == "" {
		return errors.New("login requires --email")
	}
	if password == "" {
		var err error
		if password, err = a.readPassword(); err != nil {
			return err
		}
	}

	token, user, err := a.api.Login(ctx, email, password)
	if err != nil {
		return describeAPIError(err)
	}
	if err := a.saveAccount(user.Email, user.Name, token); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Bem-vindo, %s!\n", user.Name)
	return nil
}

func (a *app) status(ctx context.Context, args []string) error {
	if err := a.flags("status").Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Respostas em %s\n", a.store.Path())
	wizard := onboarding.NewWizard(a.store, onboarding.DefaultScreens())
	wizard.Resume()
	if wizard.Done() {
		fmt.Fprintln(a.stdout, "Questionário completo.")
	} else {
		fmt.Fprintf(a.stdout, "Questionário pendente: %s\n", wizard.Current().Title)
	}

	token, err := a.store.Get(onboarding.KeyToken)
	if errors.Is(err, onboarding.ErrNotFound) {
		fmt.Fprintln(a.stdout, "Sessão: não conectado.")
		return nil
	}
	if err != nil {
		return err
	}
	user, err := a.api.Me(ctx, token)
	if client.StatusOf(err) == http.StatusUnauthorized {
		if delErr := a.store.Delete(onboarding.KeyToken); delErr != nil {
			return delErr
		}
		fmt.Fprintln(a.stdout, "Sessão expirada, rode `semerrar login`.")
		return nil
	}
	if err != nil {
		return describeAPIError(err)
	}
	fmt.Fprintf(a.stdout, "Sessão: %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) reset(args []string) error {
	var all bool
	flagSet := a.flags("reset")
	flagSet.BoolVar(&all, "all", false, "also forget the saved session")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := onboarding.Clear(a.store); err != nil {
		return err
	}
	if all {
		for _, key := range []string{onboarding.KeyToken, onboarding.KeyUserEmail, onboarding.KeyUserName} {
			if err := a.store.Delete(key); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(a.stdout, "Respostas apagadas.")
	return nil
}

func (a *app) saveAccount(email, name, token string) error {
	values := map[string]string{
		onboarding.KeyUserEmail: email,
		onboarding.KeyUserName:  name,
	}
	if token != "" {
		values[onboarding.KeyToken] = token
	}
	for _, key := range onboarding.SortedKeys(values) {
		if err := a.store.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	// a token issued to another account must not survive a signup
	if token == "" {
		if err := a.store.Delete(onboarding.KeyToken); err != nil {
			return fmt.Errorf("forget session: %w", err)
		}
	}
	return nil
}

func (a *app) readPassword() (string, error) {
	fmt.Fprint(a.stdout, "Senha: ")
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errors.New("password is required")
	}
	return password, nil
}

func describeAPIError(err error) error {
	switch client.StatusOf(err) {
	case http.StatusConflict:
		return fmt.Errorf("este e-mail já está cadastrado: %w", err)
	case http.StatusUnauthorized:
		return fmt.Errorf("senha incorreta: %w", err)
	case http.StatusNotFound:
		return fmt.Errorf("usuário não encontrado: %w", err)
	}
	return err
}
