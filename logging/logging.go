package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/mbx/constants"
	"github.com/sirupsen/logrus"
)

const (
	ServiceKey = "service"
	TimeFormat = "2006/01/02 15:04:05"
)

//
// For returns a logger entry tagged with the provided service name. Each component of the software
// should obtain its logger through this so that its lines carry the same prefix.
//
func For(name string) *logrus.Entry {
	return logrus.WithField(ServiceKey, name)
}

//
// Configure sets the level and output of the standard logrus logger and installs the prefix
// formatter.
//
func Configure(out io.Writer, level string, color bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&PrefixFormatter{Color: color})

	return nil
}

//
// PrefixFormatter renders entries as "time LEVEL ≪service≫ message key=value ...". When Color is
// set, the level is colored according to its severity.
//
type PrefixFormatter struct {
	Color bool
}

func (o *PrefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	service, _ := entry.Data[ServiceKey].(string)

	fmt.Fprintf(b, "%s %s "+constants.LogPrefixFmt+"%s",
		entry.Time.Format(TimeFormat), o.level(entry.Level), service, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != ServiceKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func (o *PrefixFormatter) level(level logrus.Level) string {
	text := strings.ToUpper(level.String())
	if len(text) > 5 {
		text = text[:4]
	}
	text = fmt.Sprintf("%-5s", text)

	if !o.Color {
		return text
	}

	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return aurora.Red(text).String()
	case logrus.WarnLevel:
		return aurora.Yellow(text).String()
	case logrus.InfoLevel:
		return aurora.Cyan(text).String()
	default:
		return aurora.White(text).String()
	}
}
