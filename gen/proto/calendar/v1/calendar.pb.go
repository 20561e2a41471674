// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: calendar/v1/calendar.proto

package calendarpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CalendarPage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ImagePath     string                 `protobuf:"bytes,2,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Month         int32                  `protobuf:"varint,4,opt,name=month,proto3" json:"month,omitempty"`
	Year          int32                  `protobuf:"varint,5,opt,name=year,proto3" json:"year,omitempty"`
	Notes         []string               `protobuf:"bytes,6,rep,name=notes,proto3" json:"notes,omitempty"`
	RawResult     string                 `protobuf:"bytes,7,opt,name=raw_result,json=rawResult,proto3" json:"raw_result,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CalendarPage) Reset() {
	*x = CalendarPage{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalendarPage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalendarPage) ProtoMessage() {}

func (x *CalendarPage) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalendarPage.ProtoReflect.Descriptor instead.
func (*CalendarPage) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{0}
}

func (x *CalendarPage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CalendarPage) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *CalendarPage) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *CalendarPage) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *CalendarPage) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *CalendarPage) GetNotes() []string {
	if x != nil {
		return x.Notes
	}
	return nil
}

func (x *CalendarPage) GetRawResult() string {
	if x != nil {
		return x.RawResult
	}
	return ""
}

func (x *CalendarPage) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CalendarEvent struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PageId       string                 `protobuf:"bytes,2,opt,name=page_id,json=pageId,proto3" json:"page_id,omitempty"`
	Day          int32                  `protobuf:"varint,3,opt,name=day,proto3" json:"day,omitempty"`
	Hour         int32                  `protobuf:"varint,4,opt,name=hour,proto3" json:"hour,omitempty"`
	Minute       int32                  `protobuf:"varint,5,opt,name=minute,proto3" json:"minute,omitempty"`
	AmPm         string                 `protobuf:"bytes,6,opt,name=am_pm,json=amPm,proto3" json:"am_pm,omitempty"`
	HasTime      bool                   `protobuf:"varint,7,opt,name=has_time,json=hasTime,proto3" json:"has_time,omitempty"`
	AllDay       bool                   `protobuf:"varint,8,opt,name=all_day,json=allDay,proto3" json:"all_day,omitempty"`
	Title        string                 `protobuf:"bytes,9,opt,name=title,proto3" json:"title,omitempty"`
	OriginalText string                 `protobuf:"bytes,10,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	Color        string                 `protobuf:"bytes,11,opt,name=color,proto3" json:"color,omitempty"`
	Featured     bool                   `protobuf:"varint,12,opt,name=featured,proto3" json:"featured,omitempty"`
	// Resolved from the owning page so multi-month results stay unambiguous.
	Month         int32 `protobuf:"varint,13,opt,name=month,proto3" json:"month,omitempty"`
	Year          int32 `protobuf:"varint,14,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CalendarEvent) Reset() {
	*x = CalendarEvent{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalendarEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalendarEvent) ProtoMessage() {}

func (x *CalendarEvent) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalendarEvent.ProtoReflect.Descriptor instead.
func (*CalendarEvent) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{1}
}

func (x *CalendarEvent) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CalendarEvent) GetPageId() string {
	if x != nil {
		return x.PageId
	}
	return ""
}

func (x *CalendarEvent) GetDay() int32 {
	if x != nil {
		return x.Day
	}
	return 0
}

func (x *CalendarEvent) GetHour() int32 {
	if x != nil {
		return x.Hour
	}
	return 0
}

func (x *CalendarEvent) GetMinute() int32 {
	if x != nil {
		return x.Minute
	}
	return 0
}

func (x *CalendarEvent) GetAmPm() string {
	if x != nil {
		return x.AmPm
	}
	return ""
}

func (x *CalendarEvent) GetHasTime() bool {
	if x != nil {
		return x.HasTime
	}
	return false
}

func (x *CalendarEvent) GetAllDay() bool {
	if x != nil {
		return x.AllDay
	}
	return false
}

func (x *CalendarEvent) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CalendarEvent) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *CalendarEvent) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *CalendarEvent) GetFeatured() bool {
	if x != nil {
		return x.Featured
	}
	return false
}

func (x *CalendarEvent) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *CalendarEvent) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type SubmitPageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImagePath     string                 `protobuf:"bytes,1,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPageRequest) Reset() {
	*x = SubmitPageRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPageRequest) ProtoMessage() {}

func (x *SubmitPageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPageRequest.ProtoReflect.Descriptor instead.
func (*SubmitPageRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitPageRequest) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

type SubmitPageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          *CalendarPage          `protobuf:"bytes,1,opt,name=page,proto3" json:"page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPageResponse) Reset() {
	*x = SubmitPageResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPageResponse) ProtoMessage() {}

func (x *SubmitPageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPageResponse.ProtoReflect.Descriptor instead.
func (*SubmitPageResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitPageResponse) GetPage() *CalendarPage {
	if x != nil {
		return x.Page
	}
	return nil
}

type GetPageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageId        string                 `protobuf:"bytes,1,opt,name=page_id,json=pageId,proto3" json:"page_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageRequest) Reset() {
	*x = GetPageRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageRequest) ProtoMessage() {}

func (x *GetPageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageRequest.ProtoReflect.Descriptor instead.
func (*GetPageRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{4}
}

func (x *GetPageRequest) GetPageId() string {
	if x != nil {
		return x.PageId
	}
	return ""
}

type GetPageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          *CalendarPage          `protobuf:"bytes,1,opt,name=page,proto3" json:"page,omitempty"`
	Events        []*CalendarEvent       `protobuf:"bytes,2,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageResponse) Reset() {
	*x = GetPageResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageResponse) ProtoMessage() {}

func (x *GetPageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageResponse.ProtoReflect.Descriptor instead.
func (*GetPageResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{5}
}

func (x *GetPageResponse) GetPage() *CalendarPage {
	if x != nil {
		return x.Page
	}
	return nil
}

func (x *GetPageResponse) GetEvents() []*CalendarEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

// At least one filter is required. month without year matches that month
// across all years; year without month returns the whole year.
type ListEventsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Year  int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month int32                  `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	Day   int32                  `protobuf:"varint,3,opt,name=day,proto3" json:"day,omitempty"`
	// scope=week returns the seven days starting at month/day (year
	// defaults to the current one). Needs month and day set.
	Scope string `protobuf:"bytes,4,opt,name=scope,proto3" json:"scope,omitempty"`
	// Inclusive YYYY-MM-DD range. When both parse, the range wins over the
	// other filters; unparseable values are ignored.
	StartDate     string `protobuf:"bytes,5,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string `protobuf:"bytes,6,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsRequest) Reset() {
	*x = ListEventsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsRequest) ProtoMessage() {}

func (x *ListEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsRequest.ProtoReflect.Descriptor instead.
func (*ListEventsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{6}
}

func (x *ListEventsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ListEventsRequest) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *ListEventsRequest) GetDay() int32 {
	if x != nil {
		return x.Day
	}
	return 0
}

func (x *ListEventsRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *ListEventsRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *ListEventsRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

type ListEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*CalendarEvent       `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsResponse) Reset() {
	*x = ListEventsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsResponse) ProtoMessage() {}

func (x *ListEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsResponse.ProtoReflect.Descriptor instead.
func (*ListEventsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{7}
}

func (x *ListEventsResponse) GetEvents() []*CalendarEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

type ExportMonthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month         int32                  `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMonthRequest) Reset() {
	*x = ExportMonthRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthRequest) ProtoMessage() {}

func (x *ExportMonthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthRequest.ProtoReflect.Descriptor instead.
func (*ExportMonthRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{8}
}

func (x *ExportMonthRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ExportMonthRequest) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

type ExportMonthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMonthResponse) Reset() {
	*x = ExportMonthResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthResponse) ProtoMessage() {}

func (x *ExportMonthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthResponse.ProtoReflect.Descriptor instead.
func (*ExportMonthResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{9}
}

func (x *ExportMonthResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_calendar_v1_calendar_proto protoreflect.FileDescriptor

const file_calendar_v1_calendar_proto_rawDesc = "" +
	"\n" +
	"\x1acalendar/v1/calendar.proto\x12\vcalendar.v1\"\xd3\x01\n" +
	"\fCalendarPage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"image_path\x18\x02 \x01(\tR\timagePath\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05month\x18\x04 \x01(\x05R\x05month\x12\x12\n" +
	"\x04year\x18\x05 \x01(\x05R\x04year\x12\x14\n" +
	"\x05notes\x18\x06 \x03(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"raw_result\x18\a \x01(\tR\trawResult\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xd6\x02\n" +
	"\rCalendarEvent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\apage_id\x18\x02 \x01(\tR\x06pageId\x12\x10\n" +
	"\x03day\x18\x03 \x01(\x05R\x03day\x12\x12\n" +
	"\x04hour\x18\x04 \x01(\x05R\x04hour\x12\x16\n" +
	"\x06minute\x18\x05 \x01(\x05R\x06minute\x12\x13\n" +
	"\x05am_pm\x18\x06 \x01(\tR\x04amPm\x12\x19\n" +
	"\bhas_time\x18\a \x01(\bR\ahasTime\x12\x17\n" +
	"\aall_day\x18\b \x01(\bR\x06allDay\x12\x14\n" +
	"\x05title\x18\t \x01(\tR\x05title\x12#\n" +
	"\roriginal_text\x18\n" +
	" \x01(\tR\foriginalText\x12\x14\n" +
	"\x05color\x18\v \x01(\tR\x05color\x12\x1a\n" +
	"\bfeatured\x18\f \x01(\bR\bfeatured\x12\x14\n" +
	"\x05month\x18\r \x01(\x05R\x05month\x12\x12\n" +
	"\x04year\x18\x0e \x01(\x05R\x04year\"2\n" +
	"\x11SubmitPageRequest\x12\x1d\n" +
	"\n" +
	"image_path\x18\x01 \x01(\tR\timagePath\"C\n" +
	"\x12SubmitPageResponse\x12-\n" +
	"\x04page\x18\x01 \x01(\v2\x19.calendar.v1.CalendarPageR\x04page\")\n" +
	"\x0eGetPageRequest\x12\x17\n" +
	"\apage_id\x18\x01 \x01(\tR\x06pageId\"t\n" +
	"\x0fGetPageResponse\x12-\n" +
	"\x04page\x18\x01 \x01(\v2\x19.calendar.v1.CalendarPageR\x04page\x122\n" +
	"\x06events\x18\x02 \x03(\v2\x1a.calendar.v1.CalendarEventR\x06events\"\x9f\x01\n" +
	"\x11ListEventsRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x14\n" +
	"\x05month\x18\x02 \x01(\x05R\x05month\x12\x10\n" +
	"\x03day\x18\x03 \x01(\x05R\x03day\x12\x14\n" +
	"\x05scope\x18\x04 \x01(\tR\x05scope\x12\x1d\n" +
	"\n" +
	"start_date\x18\x05 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x06 \x01(\tR\aendDate\"H\n" +
	"\x12ListEventsResponse\x122\n" +
	"\x06events\x18\x01 \x03(\v2\x1a.calendar.v1.CalendarEventR\x06events\">\n" +
	"\x12ExportMonthRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x14\n" +
	"\x05month\x18\x02 \x01(\x05R\x05month\")\n" +
	"\x13ExportMonthResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc7\x02\n" +
	"\x0fCalendarService\x12M\n" +
	"\n" +
	"SubmitPage\x12\x1e.calendar.v1.SubmitPageRequest\x1a\x1f.calendar.v1.SubmitPageResponse\x12D\n" +
	"\aGetPage\x12\x1b.calendar.v1.GetPageRequest\x1a\x1c.calendar.v1.GetPageResponse\x12M\n" +
	"\n" +
	"ListEvents\x12\x1e.calendar.v1.ListEventsRequest\x1a\x1f.calendar.v1.ListEventsResponse\x12P\n" +
	"\vExportMonth\x12\x1f.calendar.v1.ExportMonthRequest\x1a .calendar.v1.ExportMonthResponseBGZEgithub.com/adeola-m/calendar-tracker/gen/proto/calendar/v1;calendarpbb\x06proto3"

var (
	file_calendar_v1_calendar_proto_rawDescOnce sync.Once
	file_calendar_v1_calendar_proto_rawDescData []byte
)

func file_calendar_v1_calendar_proto_rawDescGZIP() []byte {
	file_calendar_v1_calendar_proto_rawDescOnce.Do(func() {
		file_calendar_v1_calendar_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_calendar_v1_calendar_proto_rawDesc), len(file_calendar_v1_calendar_proto_rawDesc)))
	})
	return file_calendar_v1_calendar_proto_rawDescData
}

var file_calendar_v1_calendar_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_calendar_v1_calendar_proto_goTypes = []any{
	(*CalendarPage)(nil),        // 0: calendar.v1.CalendarPage
	(*CalendarEvent)(nil),       // 1: calendar.v1.CalendarEvent
	(*SubmitPageRequest)(nil),   // 2: calendar.v1.SubmitPageRequest
	(*SubmitPageResponse)(nil),  // 3: calendar.v1.SubmitPageResponse
	(*GetPageRequest)(nil),      // 4: calendar.v1.GetPageRequest
	(*GetPageResponse)(nil),     // 5: calendar.v1.GetPageResponse
	(*ListEventsRequest)(nil),   // 6: calendar.v1.ListEventsRequest
	(*ListEventsResponse)(nil),  // 7: calendar.v1.ListEventsResponse
	(*ExportMonthRequest)(nil),  // 8: calendar.v1.ExportMonthRequest
	(*ExportMonthResponse)(nil), // 9: calendar.v1.ExportMonthResponse
}
var file_calendar_v1_calendar_proto_depIdxs = []int32{
	0, // 0: calendar.v1.SubmitPageResponse.page:type_name -> calendar.v1.CalendarPage
	0, // 1: calendar.v1.GetPageResponse.page:type_name -> calendar.v1.CalendarPage
	1, // 2: calendar.v1.GetPageResponse.events:type_name -> calendar.v1.CalendarEvent
	1, // 3: calendar.v1.ListEventsResponse.events:type_name -> calendar.v1.CalendarEvent
	2, // 4: calendar.v1.CalendarService.SubmitPage:input_type -> calendar.v1.SubmitPageRequest
	4, // 5: calendar.v1.CalendarService.GetPage:input_type -> calendar.v1.GetPageRequest
	6, // 6: calendar.v1.CalendarService.ListEvents:input_type -> calendar.v1.ListEventsRequest
	8, // 7: calendar.v1.CalendarService.ExportMonth:input_type -> calendar.v1.ExportMonthRequest
	3, // 8: calendar.v1.CalendarService.SubmitPage:output_type -> calendar.v1.SubmitPageResponse
	5, // 9: calendar.v1.CalendarService.GetPage:output_type -> calendar.v1.GetPageResponse
	7, // 10: calendar.v1.CalendarService.ListEvents:output_type -> calendar.v1.ListEventsResponse
	9, // 11: calendar.v1.CalendarService.ExportMonth:output_type -> calendar.v1.ExportMonthResponse
	8, // [8:12] is the sub-list for method output_type
	4, // [4:8] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_calendar_v1_calendar_proto_init() }
func file_calendar_v1_calendar_proto_init() {
	if File_calendar_v1_calendar_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_calendar_v1_calendar_proto_rawDesc), len(file_calendar_v1_calendar_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_calendar_v1_calendar_proto_goTypes,
		DependencyIndexes: file_calendar_v1_calendar_proto_depIdxs,
		MessageInfos:      file_calendar_v1_calendar_proto_msgTypes,
	}.Build()
	File_calendar_v1_calendar_proto = out.File
	file_calendar_v1_calendar_proto_goTypes = nil
	file_calendar_v1_calendar_proto_depIdxs = nil
}
