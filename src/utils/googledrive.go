package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService builds the Drive client from service-account
// credentials, taken from GOOGLE_DRIVE_CREDENTIALS_PATH (a file) or
// GOOGLE_DRIVE_CREDENTIALS_JSON (inline JSON).
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		credentialsJSON := []byte(os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"))
		if path := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); path != "" {
			content, err := os.ReadFile(path)
			if err != nil {
				initErr = fmt.Errorf("reading credentials file: %w", err)
				return
			}
			credentialsJSON = content
		}
		if len(credentialsJSON) == 0 {
			initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be set")
			return
		}

		ctx := context.Background()
		creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("loading credentials: %w", err)
			return
		}
		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("creating Google Drive service: %w", err)
			return
		}

		log.Println("[GOOGLE_DRIVE] Service initialized")
	})
	return initErr
}

func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL pulls the file ID out of the usual Google Drive URL
// shapes.
func ExtractFileIDFromURL(url string) (string, error) {
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,
		`id=([a-zA-Z0-9_-]+)`,
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`,
	}
	for _, pattern := range patterns {
		matches := regexp.MustCompile(pattern).FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", fmt.Errorf("could not extract a file ID from url: %s", url)
}

// DownloadFileFromGoogleDrive fetches a file's content and name through the
// Drive API.
func DownloadFileFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", err
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("fetching file info: %w", err)
	}
	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("%s is a folder, not a file", fileID)
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("downloading file: %w", err)
	}

	log.Printf("[GOOGLE_DRIVE] Downloaded %s (%d bytes)\n", file.Name, file.Size)
	return resp.Body, file.Name, nil
}

func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
