package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRecordsCSV(t *testing.T) {
	path := writeCSV(t, "\ufeffNAME,F_NAME,roll_no,Branch,Session,blood_group,DOB,ADD.,photo,notes\n"+
		"Asha Kumari,Ram Kumar,12345,CSE,2021-25,B+,01-01-2003,\"Gaya, Bihar\",asha.png,ignored\n"+
		",,,,,,,,,\n"+
		" Vikram , Suresh ,67890,ME,2020-24,O-,02-02-2002,Patna,,\n")

	rows, err := LoadRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, Record{
		Name: "Asha Kumari", FatherName: "Ram Kumar", RollNumber: "12345", Branch: "CSE",
		Session: "2021-25", BloodGroup: "B+", DateOfBirth: "01-01-2003", Address: "Gaya, Bihar",
	}, rows[0].Record)
	require.Equal(t, "asha.png", rows[0].Photo)

	require.Equal(t, "Vikram", rows[1].Record.Name)
	require.Equal(t, "Suresh", rows[1].Record.FatherName)
	require.Empty(t, rows[1].Photo)
}

func TestLoadRecordsCSV_CanonicalHeaders(t *testing.T) {
	path := writeCSV(t, "address,date_of_birth,blood_group,session,branch,roll_number,father_name,name\n"+
		"Gaya,01-01-2003,A+,2021-25,EE,1,Ram,Asha\n")
	rows, err := LoadRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Asha", rows[0].Record.Name)
	require.Equal(t, "Gaya", rows[0].Record.Address)
}

func TestLoadRecordsCSV_ShortRow(t *testing.T) {
	path := writeCSV(t, "name,father_name,roll_number,branch,session,blood_group,date_of_birth,address\n"+
		"Asha,Ram\n")
	rows, err := LoadRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, Record{Name: "Asha", FatherName: "Ram"}, rows[0].Record)
}

func TestLoadRecordsCSV_MissingColumns(t *testing.T) {
	path := writeCSV(t, "name,branch\nAsha,CSE\n")
	_, err := LoadRecordsCSV(path)
	require.ErrorIs(t, err, ErrMissingColumns)
	require.Contains(t, err.Error(), FieldRollNumber)
}

func TestLoadRecordsCSV_Errors(t *testing.T) {
	_, err := LoadRecordsCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadRecordsCSV(writeCSV(t, ""))
	require.Error(t, err)
}
