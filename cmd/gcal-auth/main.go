// Command gcal-auth authorizes Google Calendar access for OAuth desktop
// credentials and writes token.json. Run it once locally; service account
// credentials do not need it.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"travel-planner/pkg/gcalendar"
)

const defaultTokenPath = "token.json"

var (
	credentialsPath string
	tokenPath       string
	calendarID      string
)

var rootCmd = &cobra.Command{
	Use:          "gcal-auth",
	Short:        "Authorize Google Calendar and save token.json",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return authorize(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&credentialsPath, "credentials", "c", "google-credentials.json", "OAuth desktop app credentials file")
	rootCmd.Flags().StringVarP(&tokenPath, "token", "t", defaultTokenPath, "Where to write the token")
	rootCmd.Flags().StringVar(&calendarID, "calendar", "primary", "Calendar used to verify access")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func authorize(ctx context.Context, in io.Reader, out io.Writer) error {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (is %q an OAuth desktop app file?): %w", credentialsPath, err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "1단계: 아래 URL을 브라우저에서 열고 Google 계정으로 로그인하세요.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "2단계: 브라우저에 표시된 인증 코드를 붙여넣고 Enter를 누르세요: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}
	fmt.Fprintf(out, "\n토큰이 저장되었습니다: %s\n", tokenPath)

	// The calendar client only reads token.json from the working directory.
	if tokenPath != defaultTokenPath {
		return nil
	}
	return verify(ctx, data, out)
}

// verify lists the next week of events with the new token.
func verify(ctx context.Context, credentials []byte, out io.Writer) error {
	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, credentials)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
		MaxResults: 5,
	})
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	fmt.Fprintf(out, "캘린더 접근 확인 완료 (향후 7일 일정 %d건)\n", len(events))
	return nil
}
