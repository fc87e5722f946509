package extension

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/itchio/modkit/installer"
	"github.com/pkg/errors"
)

// An ExtensionInfo.xml looks like:
//
//	<HacknetExtension>
//	  <Name>Some Extension</Name>
//	  ...
//	</HacknetExtension>
//
// Only the first Name right below the root matters, whatever the
// root is called.
const nameElement = "Name"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type manifestDocument struct {
	XMLName xml.Name
	Names   []string `xml:"Name"`
}

// ResolveIdentity reads the manifest at the given listing path and
// returns the sanitized extension name. It reads the manifest exactly once.
func ResolveIdentity(staged installer.StagedFiles, manifestPath string) (string, error) {
	if staged == nil {
		return "", errors.Errorf("no staged files to read %s from", manifestPath)
	}

	contents, err := staged.ReadFile(manifestPath)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", manifestPath)
	}

	return ParseIdentity(contents)
}

// ParseIdentity extracts the sanitized extension name from the
// contents of an extensioninfo.xml file.
func ParseIdentity(contents []byte) (string, error) {
	contents = bytes.TrimPrefix(contents, utf8BOM)

	err := checkWellFormed(contents)
	if err != nil {
		return "", errors.Wrap(installer.ErrManifestParse, err.Error())
	}

	var doc manifestDocument
	err = xml.Unmarshal(contents, &doc)
	if err != nil {
		return "", errors.Wrap(installer.ErrManifestParse, err.Error())
	}

	if len(doc.Names) == 0 {
		return "", errors.Wrapf(installer.ErrManifestFieldMissing, "no <%s> in <%s>", nameElement, doc.XMLName.Local)
	}

	identity := installer.SanitizeIdentity(doc.Names[0])
	if identity == "" {
		return "", errors.Wrapf(installer.ErrManifestFieldMissing, "<%s> is empty", nameElement)
	}
	if strings.Trim(identity, ".") == "" {
		// would be "." or ".." as a folder name
		return "", errors.Wrapf(installer.ErrManifestFieldMissing, "<%s> %q is not a usable folder name", nameElement, identity)
	}

	return identity, nil
}

// checkWellFormed walks the whole document, since xml.Unmarshal
// stops after the first element and would let trailing garbage through.
func checkWellFormed(contents []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(contents))

	depth := 0
	roots := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return errors.Errorf("second root element <%s>", t.Name.Local)
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return errors.New("text outside of root element")
			}
		}
	}

	if roots == 0 {
		return errors.New("no root element")
	}
	return nil
}
