package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ersoy/studentms/internal/app/models"
	"github.com/ersoy/studentms/internal/app/services"
)

const dateOnly = "2006-01-02"

// Menu drives the interactive console interface over a StudentService.
type Menu struct {
	service services.StudentService
	in      *bufio.Scanner
	out     io.Writer
}

// NewMenu creates a console menu reading from in and writing to out.
func NewMenu(service services.StudentService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.printMenu()
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.addStudent(ctx)
		case "2":
			m.listStudents(ctx)
		case "3":
			m.findByID(ctx)
		case "4":
			m.searchByFirstName(ctx)
		case "5":
			m.searchByLastName(ctx)
		case "6":
			m.findByEmail(ctx)
		case "7":
			m.updateStudent(ctx)
		case "8":
			m.deleteStudent(ctx)
		case "9":
			m.showStatistics(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "===== Student Management System =====")
	fmt.Fprintln(m.out, "1. Add a new student")
	fmt.Fprintln(m.out, "2. List all students")
	fmt.Fprintln(m.out, "3. Find student by ID")
	fmt.Fprintln(m.out, "4. Search students by first name")
	fmt.Fprintln(m.out, "5. Search students by last name")
	fmt.Fprintln(m.out, "6. Find student by email")
	fmt.Fprintln(m.out, "7. Update a student")
	fmt.Fprintln(m.out, "8. Delete a student")
	fmt.Fprintln(m.out, "9. Show statistics")
	fmt.Fprintln(m.out, "0. Exit")
}

// prompt writes a label and reads one line. ok is false when input ends.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptID reads and parses a positive integer identifier.
func (m *Menu) promptID(label string) (int64, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(m.out, "Invalid ID: must be a positive number.")
		return 0, false
	}
	return id, true
}

// readStudent collects every student field from the console.
func (m *Menu) readStudent() (*models.Student, bool) {
	student := &models.Student{}
	fields := []struct {
		label  string
		target *string
	}{
		{"First name: ", &student.FirstName},
		{"Last name: ", &student.LastName},
		{"Email: ", &student.Email},
		{"Phone number: ", &student.PhoneNumber},
		{"Address (optional): ", &student.Address},
		{"City (optional): ", &student.City},
		{"State (optional): ", &student.State},
		{"Zip code (optional): ", &student.ZipCode},
	}
	for _, field := range fields {
		value, ok := m.prompt(field.label)
		if !ok {
			return nil, false
		}
		*field.target = value
	}

	dobRaw, ok := m.prompt("Date of birth (yyyy-mm-dd, optional): ")
	if !ok {
		return nil, false
	}
	if dobRaw != "" {
		dob, err := time.Parse(dateOnly, dobRaw)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid date format, expected %s.\n", dateOnly)
			return nil, false
		}
		student.DateOfBirth = &dob
	}

	statusRaw, ok := m.prompt("Enrollment status (ACTIVE/INACTIVE/SUSPENDED/GRADUATED, blank for ACTIVE): ")
	if !ok {
		return nil, false
	}
	if statusRaw != "" {
		status, valid := models.ParseEnrollmentStatus(statusRaw)
		if !valid {
			fmt.Fprintln(m.out, "Invalid enrollment status.")
			return nil, false
		}
		student.EnrollmentStatus = status
	}

	return student, true
}

func (m *Menu) addStudent(ctx context.Context) {
	student, ok := m.readStudent()
	if !ok {
		return
	}

	created, err := m.service.AddStudent(ctx, student)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to add student: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Student added with ID %d.\n", created.ID)
}

func (m *Menu) listStudents(ctx context.Context) {
	students, err := m.service.GetAllStudents(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to list students: %v\n", err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students found.")
		return
	}
	m.printStudents(students)
}

func (m *Menu) findByID(ctx context.Context) {
	id, ok := m.promptID("Student ID: ")
	if !ok {
		return
	}

	student, err := m.service.GetStudentByID(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Lookup failed: %v\n", err)
		return
	}
	m.printStudent(student)
}

func (m *Menu) searchByFirstName(ctx context.Context) {
	name, ok := m.prompt("First name: ")
	if !ok {
		return
	}

	students, err := m.service.SearchByFirstName(ctx, name)
	if err != nil {
		fmt.Fprintf(m.out, "Search failed: %v\n", err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintf(m.out, "No students found with first name '%s'.\n", name)
		return
	}
	m.printStudents(students)
}

func (m *Menu) searchByLastName(ctx context.Context) {
	name, ok := m.prompt("Last name: ")
	if !ok {
		return
	}

	students, err := m.service.SearchByLastName(ctx, name)
	if err != nil {
		fmt.Fprintf(m.out, "Search failed: %v\n", err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintf(m.out, "No students found with last name '%s'.\n", name)
		return
	}
	m.printStudents(students)
}

func (m *Menu) findByEmail(ctx context.Context) {
	email, ok := m.prompt("Email: ")
	if !ok {
		return
	}

	student, err := m.service.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(m.out, "Lookup failed: %v\n", err)
		return
	}
	m.printStudent(student)
}

func (m *Menu) updateStudent(ctx context.Context) {
	id, ok := m.promptID("Student ID to update: ")
	if !ok {
		return
	}

	// Show the current record before collecting replacements
	current, err := m.service.GetStudentByID(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Lookup failed: %v\n", err)
		return
	}
	m.printStudent(current)

	fmt.Fprintln(m.out, "Enter the new values:")
	student, ok := m.readStudent()
	if !ok {
		return
	}
	student.ID = id

	updated, err := m.service.UpdateStudent(ctx, student)
	if err != nil {
		fmt.Fprintf(m.out, "Update failed: %v\n", err)
		return
	}
	if !updated {
		fmt.Fprintf(m.out, "No student with ID %d.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Student updated.")
}

func (m *Menu) deleteStudent(ctx context.Context) {
	id, ok := m.promptID("Student ID to delete: ")
	if !ok {
		return
	}

	confirm, ok := m.prompt("Are you sure? (y/N): ")
	if !ok || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(m.out, "Deletion cancelled.")
		return
	}

	deleted, err := m.service.DeleteStudent(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Deletion failed: %v\n", err)
		return
	}
	if !deleted {
		fmt.Fprintf(m.out, "No student with ID %d.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Student deleted.")
}

func (m *Menu) showStatistics(ctx context.Context) {
	stats, err := m.service.GetStatistics(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to compute statistics: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "Total students: %d\n", stats.Total)
	for _, status := range models.AllStatuses {
		fmt.Fprintf(m.out, "  %-10s %d\n", status, stats.ByStatus[status])
	}
}

func (m *Menu) printStudent(student *models.Student) {
	if student == nil {
		return
	}
	fmt.Fprintf(m.out, "ID: %d\n", student.ID)
	fmt.Fprintf(m.out, "  Name:    %s\n", student.FullName())
	fmt.Fprintf(m.out, "  Email:   %s\n", student.Email)
	fmt.Fprintf(m.out, "  Phone:   %s\n", student.PhoneNumber)
	if student.DateOfBirth != nil {
		fmt.Fprintf(m.out, "  DOB:     %s\n", student.DateOfBirth.Format(dateOnly))
	}
	if student.Address != "" || student.City != "" || student.State != "" || student.ZipCode != "" {
		fmt.Fprintf(m.out, "  Address: %s\n", strings.TrimSpace(fmt.Sprintf("%s %s %s %s",
			student.Address, student.City, student.State, student.ZipCode)))
	}
	fmt.Fprintf(m.out, "  Enrolled: %s (%s)\n", student.EnrollmentDate.Format(dateOnly), student.EnrollmentStatus)
}

func (m *Menu) printStudents(students []*models.Student) {
	fmt.Fprintf(m.out, "Found %d student(s):\n", len(students))
	for _, student := range students {
		m.printStudent(student)
	}
}
