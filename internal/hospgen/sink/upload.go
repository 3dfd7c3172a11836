package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

// Uploader mirrors written files into an Azure blob container, preserving
// each file's path relative to the output directory beneath an optional
// prefix. Uploads are best-effort: failures are logged into the status store
// and never propagated.
type Uploader struct {
	client    *azblob.Client
	container string
	prefix    string
	outdir    string
	store     *status.Store
}

// NewUploader builds a blob client from the configured credentials. A full
// connection string wins; otherwise account name + SAS token is required.
func NewUploader(cfg config.AzureCfg, outdir string, store *status.Store) (*Uploader, error) {
	if cfg.Container == "" {
		return nil, fmt.Errorf("azure upload enabled but container is not set")
	}

	var client *azblob.Client
	var err error
	switch {
	case cfg.ConnectionString != "":
		client, err = azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	case cfg.AccountName != "" && cfg.SASToken != "":
		sas := cfg.SASToken
		if !strings.HasPrefix(sas, "?") {
			sas = "?" + sas
		}
		url := fmt.Sprintf("https://%s.blob.core.windows.net%s", cfg.AccountName, sas)
		client, err = azblob.NewClientWithNoCredential(url, nil)
	default:
		return nil, fmt.Errorf("azure upload enabled but no connection string or account/SAS credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("azure client: %w", err)
	}

	u := &Uploader{
		client:    client,
		container: cfg.Container,
		prefix:    strings.Trim(cfg.PathPrefix, "/"),
		outdir:    outdir,
		store:     store,
	}
	// Container may already exist; that is fine.
	if _, err := client.CreateContainer(context.Background(), cfg.Container, nil); err != nil {
		logger.L().Debugw("create container", "container", cfg.Container, "err", err)
	}
	store.Log("Blob uploads initialized for container '%s'", cfg.Container)
	return u, nil
}

// Upload sends one local file to the container. Best-effort.
func (u *Uploader) Upload(ctx context.Context, localPath string) {
	rel, err := filepath.Rel(u.outdir, localPath)
	if err != nil {
		rel = filepath.Base(localPath)
	}
	blobPath := filepath.ToSlash(rel)
	if u.prefix != "" {
		blobPath = u.prefix + "/" + blobPath
	}

	f, err := os.Open(localPath)
	if err != nil {
		u.store.Log("Blob upload failed for %s: %v", localPath, err)
		return
	}
	defer f.Close()

	if _, err := u.client.UploadFile(ctx, u.container, blobPath, f, nil); err != nil {
		u.store.Log("Blob upload failed for %s: %v", localPath, err)
		return
	}

	u.store.Log("Blob uploaded: %s", blobPath)
	u.store.Update(func(r *status.Record) {
		r.ADLSUploaded = append(r.ADLSUploaded, localPath)
	})
}
