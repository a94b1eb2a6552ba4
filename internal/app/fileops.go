package app

import (
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/fileio"
	"github.com/bethropolis/jot/internal/logger"
)

// openFile asks for a path and loads it. Cancelling does nothing.
func (a *App) openFile() error {
	path, ok := a.files.AskOpenFilename()
	if !ok {
		logger.Debugf("App: open cancelled")
		return nil
	}
	return a.openPath(path)
}

// openPath replaces the text with the content of path.
func (a *App) openPath(path string) error {
	content, err := fileio.Read(path)
	if err != nil {
		return err
	}
	a.surface.SetText(content)
	a.surface.SetModified(false)
	a.docPath = path
	a.setTitle("Open file: " + path)
	logger.Infof("App: opened '%s'", path)
	a.events.Dispatch(event.TypeFileOpened, event.FileData{FilePath: path})
	return nil
}

// saveFile asks for a path and writes the full text to it. Cancelling does nothing.
func (a *App) saveFile() error {
	path, ok := a.files.AskSaveAsFilename()
	if !ok {
		logger.Debugf("App: save cancelled")
		return nil
	}
	if err := fileio.Write(path, a.surface.Text()); err != nil {
		return err
	}
	a.surface.SetModified(false)
	a.docPath = path
	a.setTitle("Save file: " + path)
	logger.Infof("App: saved '%s'", path)
	a.events.Dispatch(event.TypeFileSaved, event.FileData{FilePath: path})
	return nil
}
