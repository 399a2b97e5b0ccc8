package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lorraxs/whiten/config"
	"lorraxs/whiten/structs"
	"lorraxs/whiten/utils"
)

var (
	ErrIO     = errors.New("i/o error")
	ErrDecode = errors.New("decode error")
	ErrEncode = errors.New("encode error")
)

type Recolorer struct {
	Config *config.Config
}

func NewRecolorer(cfg *config.Config) *Recolorer {
	return &Recolorer{Config: cfg}
}

// Recolor turns every pixel of the image at path white, keeping alpha, and
// overwrites the file in its original container format. The file is only
// replaced once the new contents are fully written.
func (r *Recolorer) Recolor(path string) structs.Result {
	result := structs.Result{Path: path, Kind: structs.ResultProcessingError}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrIO, err)
		return result
	}

	decoded, err := utils.DecodeImage(data)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrDecode, err)
		return result
	}
	result.Format = decoded.Format
	bounds := decoded.Bounds()
	result.Width, result.Height = bounds.Dx(), bounds.Dy()

	if decoded.Animation != nil {
		utils.WhitenAnimation(decoded.Animation)
	} else {
		decoded.Image = utils.Whiten(decoded.Image)
	}

	var buf bytes.Buffer
	if err := utils.EncodeImage(&buf, decoded, r.Config); err != nil {
		result.Err = fmt.Errorf("%w: %s: %w", ErrEncode, decoded.Format, err)
		return result
	}

	if err := replaceFile(path, buf.Bytes()); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrIO, err)
		return result
	}

	result.Kind = structs.ResultOK
	return result
}

// replaceFile swaps data in for the contents of path via a sibling temp file
// and rename, keeping the original permission bits. Symlinks are followed so
// the link target is replaced, not the link.
func replaceFile(path string, data []byte) (err error) {
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
