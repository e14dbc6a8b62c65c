package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/EpicMandM/lhms/internal/models"
	"github.com/EpicMandM/lhms/internal/service"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/EpicMandM/lhms/internal/console"

var errInputClosed = errors.New("input closed")

// Shell runs the numbered operator menu against a register and its snapshot
// file. It reads one line per prompt and never exits on an operation error.
type Shell struct {
	Register  service.RoomRegister
	Snapshots service.SnapshotStore
	Hotel     string
	Logger    *logger.Logger
	Tracer    trace.Tracer

	reader *bufio.Reader
	out    io.Writer
}

func NewShell(register service.RoomRegister, snapshots service.SnapshotStore, hotel string, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	if log == nil {
		log = logger.Discard()
	}
	return &Shell{
		Register:  register,
		Snapshots: snapshots,
		Hotel:     hotel,
		Logger:    log,
		Tracer:    otel.Tracer(tracerName),
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run shows the menu until the operator picks 0 or input ends.
func (s *Shell) Run(ctx context.Context) error {
	ctx, span := s.Tracer.Start(ctx, "console.run")
	defer span.End()

	s.Logger.Info("Console started", logger.Action("startup"), logger.F("HOTEL", s.Hotel))
	for {
		s.displayMenu()
		choice, err := s.prompt("Enter your choice (0–9): ")
		if errors.Is(err, errInputClosed) {
			s.Logger.Info("Input closed, leaving console", logger.Action("shutdown"))
			span.AddEvent("input_closed")
			return nil
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "reading input failed")
			return err
		}

		done, err := s.dispatch(ctx, choice)
		if errors.Is(err, errInputClosed) {
			s.Logger.Info("Input closed mid-operation, leaving console", logger.Action("shutdown"))
			span.AddEvent("input_closed")
			return nil
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "reading input failed")
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) displayMenu() {
	s.println()
	s.println(s.Hotel + " Hotel Management System")
	s.println("1. Add Room")
	s.println("2. Delete Room")
	s.println("3. Display Room Details")
	s.println("4. Allocate Room")
	s.println("5. Display Room Allocation Details")
	s.println("6. Billing and Deallocation")
	s.println("7. Save Room Allocation to File")
	s.println("8. Display Room Allocation from File")
	s.println("9. Backup and Clear Allocation File")
	s.println("0. Exit Application")
}

// dispatch runs one menu choice and reports whether the console should stop.
func (s *Shell) dispatch(ctx context.Context, choice string) (bool, error) {
	s.Logger.Debug("Menu choice", logger.Choice(choice))

	var err error
	switch choice {
	case "1":
		err = s.traced(ctx, "add_room", s.handleAddRoom)
	case "2":
		err = s.traced(ctx, "delete_room", s.handleDeleteRoom)
	case "3":
		err = s.traced(ctx, "display_rooms", s.handleDisplayRooms)
	case "4":
		err = s.traced(ctx, "allocate_room", s.handleAllocateRoom)
	case "5":
		err = s.traced(ctx, "display_allocations", s.handleDisplayAllocations)
	case "6":
		err = s.traced(ctx, "billing", s.handleBilling)
	case "7":
		err = s.traced(ctx, "save_snapshot", s.handleSaveSnapshot)
	case "8":
		err = s.traced(ctx, "load_snapshot", s.handleLoadAndDisplay)
	case "9":
		err = s.traced(ctx, "backup_and_clear", s.handleBackupAndClear)
	case "0":
		s.println(fmt.Sprintf("Thank you for using %s Hotel Management System.", s.Hotel))
		s.Logger.Info("Operator exited", logger.Action("shutdown"))
		return true, nil
	default:
		trace.SpanFromContext(ctx).AddEvent("invalid_choice", trace.WithAttributes(
			attribute.String("menu.choice", choice),
		))
		s.println("Invalid choice. Please enter a number between 0 and 9.")
	}
	return false, err
}

func (s *Shell) traced(ctx context.Context, name string, handler func(trace.Span) error) error {
	_, span := s.Tracer.Start(ctx, "console."+name)
	defer span.End()
	return handler(span)
}

func (s *Shell) handleAddRoom(span trace.Span) error {
	number, err := s.prompt("Enter Room Number: ")
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("room.number", number))
	if err := s.Register.CheckNew(number); err != nil {
		s.fail(span, err, "Room not found!")
		return nil
	}

	roomType, err := s.prompt("Enter Room Type (Single/Double/Deluxe): ")
	if err != nil {
		return err
	}
	features, err := s.prompt("Enter Room Features (e.g. TV, AC, Free WiFi): ")
	if err != nil {
		return err
	}
	if _, err := s.Register.Add(number, roomType, features); err != nil {
		s.fail(span, err, "Room not found!")
		return nil
	}
	s.println(fmt.Sprintf("Room %s added successfully.", number))
	return nil
}

func (s *Shell) handleDeleteRoom(span trace.Span) error {
	number, err := s.prompt("Enter Room Number to Delete: ")
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("room.number", number))
	if err := s.Register.Delete(number); err != nil {
		s.fail(span, err, "Room not found!")
		return nil
	}
	s.println(fmt.Sprintf("Room %s deleted successfully.", number))
	return nil
}

func (s *Shell) handleDisplayRooms(span trace.Span) error {
	rooms, err := s.Register.ListRooms()
	if err != nil {
		s.fail(span, err, "")
		return nil
	}
	span.SetAttributes(attribute.Int("room.count", len(rooms)))
	if len(rooms) == 0 {
		s.println("No rooms available.")
		return nil
	}
	for _, room := range rooms {
		s.println()
		s.println("Room No: " + room.Number)
		s.println("Type: " + room.Type)
		s.println("Features: " + room.Features)
		s.println("Status: " + room.Status.String())
	}
	return nil
}

func (s *Shell) handleAllocateRoom(span trace.Span) error {
	number, err := s.prompt("Enter Room Number to Allocate: ")
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("room.number", number))
	if err := s.Register.CheckAllocatable(number); err != nil {
		s.fail(span, err, "Room not found!")
		return nil
	}

	customer, err := s.prompt("Enter Customer Name: ")
	if err != nil {
		return err
	}
	if err := s.Register.Allocate(number, customer); err != nil {
		s.fail(span, err, "Room not found!")
		return nil
	}
	s.println(fmt.Sprintf("Room %s successfully allocated to %s.", number, customer))
	return nil
}

func (s *Shell) handleDisplayAllocations(span trace.Span) error {
	rooms, err := s.Register.ListAllocations()
	if err != nil {
		s.fail(span, err, "")
		return nil
	}
	span.SetAttributes(attribute.Int("room.allocated", len(rooms)))
	if len(rooms) == 0 {
		s.println("No rooms are currently allocated.")
		return nil
	}
	for _, room := range rooms {
		s.println()
		s.println("Room No: " + room.Number)
		s.println("Allocated to: " + room.Customer)
	}
	return nil
}

func (s *Shell) handleBilling(span trace.Span) error {
	number, err := s.prompt("Enter Room Number to Deallocate: ")
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("room.number", number))
	if err := s.Register.CheckOccupied(number); err != nil {
		s.fail(span, err, "Room not found or is not occupied.")
		return nil
	}

	days, err := s.prompt("Enter number of days stayed: ")
	if err != nil {
		return err
	}
	bill, err := s.Register.BillAndDeallocate(number, days)
	if err != nil {
		s.fail(span, err, "Room not found or is not occupied.")
		return nil
	}
	span.SetAttributes(attribute.Int("bill.days", bill.Days), attribute.Int("bill.total", bill.Total))
	s.printBill(bill)
	return nil
}

func (s *Shell) printBill(bill *models.Bill) {
	s.println("Customer: " + bill.Customer)
	s.println(fmt.Sprintf("Total Bill: $%d", bill.Total))
	s.println(fmt.Sprintf("Room %s is now deallocated and available.", bill.RoomNumber))
}

func (s *Shell) handleSaveSnapshot(span trace.Span) error {
	rooms, err := s.Register.ListRooms()
	if err != nil {
		s.fail(span, err, "")
		return nil
	}
	if err := s.Snapshots.SaveSnapshot(rooms); err != nil {
		s.fail(span, err, "")
		return nil
	}
	span.SetAttributes(attribute.Int("room.count", len(rooms)))
	s.println("Room data saved to " + s.Snapshots.Path())
	return nil
}

func (s *Shell) handleLoadAndDisplay(span trace.Span) error {
	content, err := s.Snapshots.ReadSnapshot()
	if errors.Is(err, service.ErrNoDataFile) {
		span.AddEvent("data_file_missing")
		s.println("Data file does not exist.")
		return nil
	}
	if err != nil {
		s.failIO(span, err, "Error reading file.")
		return nil
	}
	s.println()
	s.println("--- Room Allocation Data from File ---")
	s.println(content)
	return nil
}

func (s *Shell) handleBackupAndClear(span trace.Span) error {
	result, err := s.Snapshots.BackupAndClear()
	if errors.Is(err, service.ErrNoDataFile) {
		span.AddEvent("data_file_missing")
		s.println("Main data file does not exist.")
		return nil
	}
	if err != nil {
		s.failIO(span, err, "Error during backup or clearing.")
		return nil
	}
	span.SetAttributes(attribute.String("backup.path", result.Path), attribute.Int("backup.bytes", result.Bytes))
	s.println(fmt.Sprintf("Data backed up to %s and original file cleared.", result.Path))
	return nil
}

// fail records err on the span and prints the operator message for it.
// notFound is the wording used for ErrRoomNotFound, which differs per menu.
func (s *Shell) fail(span trace.Span, err error, notFound string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	switch {
	case errors.Is(err, service.ErrDuplicateRoom):
		s.println("Room already exists!")
	case errors.Is(err, service.ErrRoomNotFound):
		s.println(notFound)
	case errors.Is(err, service.ErrRoomOccupied):
		s.println("Room is already occupied.")
	case errors.Is(err, service.ErrInvalidDuration):
		s.println("Invalid input. Days must be a number.")
	case errors.Is(err, service.ErrIOFailure):
		s.println("Error saving to file.")
	default:
		s.Logger.Error("Unexpected register failure", logger.Error(err))
		s.println("Error: " + err.Error())
	}
}

func (s *Shell) failIO(span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.println(msg)
}

// prompt writes text without a newline and reads one line of input of any
// length. A final line without a newline is still returned.
func (s *Shell) prompt(text string) (string, error) {
	_, _ = fmt.Fprint(s.out, text)
	line, err := s.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", errInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *Shell) println(lines ...string) {
	_, _ = fmt.Fprintln(s.out, strings.Join(lines, ""))
}
