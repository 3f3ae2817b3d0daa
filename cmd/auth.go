package cmd

import (
	"fmt"
	"path"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage profile authentication",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var profileID string
	var method string
	var secretKey string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a login secret for a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			authMethod, err := parseAuthMethod(method)
			if err != nil {
				return err
			}

			profile, err := resolveProfile(cmd.Context(), app, profileID)
			if err != nil {
				return err
			}

			ref := secretKey
			if ref == "" {
				ref = defaultSecretRef(profile.ID, authMethod)
			}

			if err := app.secrets.Put(cmd.Context(), ref, secretValue); err != nil {
				return fmt.Errorf("store secret %q: %w", ref, err)
			}

			profile.Auth = domain.Auth{Method: authMethod, SecretRef: ref}
			if err := app.profiles.Save(cmd.Context(), profile); err != nil {
				return fmt.Errorf("save profile auth: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")
	cmd.Flags().StringVar(&method, "method", "", "Auth method (password|cookies)")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (defaults to <profile>/<method>)")
	cmd.Flags().StringVar(&secretValue, "secret-value", "", "Secret value")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var profileID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a profile's stored authentication",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := resolveProfile(cmd.Context(), app, profileID)
			if err != nil {
				return err
			}

			if profile.Auth.SecretRef != "" {
				if err := app.secrets.Delete(cmd.Context(), profile.Auth.SecretRef); err != nil {
					return fmt.Errorf("delete secret %q: %w", profile.Auth.SecretRef, err)
				}
			}

			profile.Auth = domain.Auth{}
			if err := app.profiles.Save(cmd.Context(), profile); err != nil {
				return fmt.Errorf("save profile auth: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")

	return cmd
}

func parseAuthMethod(raw string) (domain.AuthMethod, error) {
	method := domain.AuthMethod(raw)
	switch method {
	case domain.AuthMethodPassword, domain.AuthMethodCookies:
		return method, nil
	default:
		return "", fmt.Errorf("unsupported auth method %q", raw)
	}
}

// defaultSecretRef names the secret-store entry for a profile's auth
// material: "<profile>/password" or "<profile>/cookies".
func defaultSecretRef(profile domain.ProfileID, method domain.AuthMethod) string {
	name := "password"
	if method == domain.AuthMethodCookies {
		name = "cookies"
	}
	return path.Join(string(profile), name)
}
