package cards

// Record is the normalized input of the card renderer. Absent fields are
// empty strings.
type Record struct {
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	RollNumber  string `json:"roll_number"`
	Branch      string `json:"branch"`
	Session     string `json:"session"`
	BloodGroup  string `json:"blood_group"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// Recognized field keys.
const (
	FieldName        = "name"
	FieldFatherName  = "father_name"
	FieldRollNumber  = "roll_number"
	FieldBranch      = "branch"
	FieldSession     = "session"
	FieldBloodGroup  = "blood_group"
	FieldDateOfBirth = "date_of_birth"
	FieldAddress     = "address"
)

// Fields lists the recognized keys in card order.
var Fields = []string{
	FieldName,
	FieldFatherName,
	FieldRollNumber,
	FieldBranch,
	FieldSession,
	FieldBloodGroup,
	FieldDateOfBirth,
	FieldAddress,
}

// Set assigns the field identified by a canonical key. Unknown keys are
// ignored and reported as false.
func (r *Record) Set(key, value string) bool {
	switch key {
	case FieldName:
		r.Name = value
	case FieldFatherName:
		r.FatherName = value
	case FieldRollNumber:
		r.RollNumber = value
	case FieldBranch:
		r.Branch = value
	case FieldSession:
		r.Session = value
	case FieldBloodGroup:
		r.BloodGroup = value
	case FieldDateOfBirth:
		r.DateOfBirth = value
	case FieldAddress:
		r.Address = value
	default:
		return false
	}
	return true
}

// Row is a record read from a batch file together with its optional photo
// reference.
type Row struct {
	Record Record `json:"record"`
	Photo  string `json:"photo,omitempty"`
}
